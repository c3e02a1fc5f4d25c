package booking

import "strings"

// NormalizePhone strips every whitespace character; stored and exported
// phone numbers are always the compact form.
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
