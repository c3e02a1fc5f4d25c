package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes converts an "HH:MM" wall-clock string to its minute offset from
// midnight. Inputs come from config rows and time pickers and are assumed
// well formed.
func ToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	return h*60 + m
}

// MinutesToTime is the inverse of ToMinutes, zero padded, 24-hour format.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
