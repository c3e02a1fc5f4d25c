package sheets

import "encoding/json"

// ColumnMapping ties an appointment field to a spreadsheet column. The
// mapping list is ordered; exported values follow it left to right.
type ColumnMapping struct {
	Field  string `json:"field"`
	Column string `json:"column"`
}

func ParseMappings(raw string) ([]ColumnMapping, error) {
	if raw == "" {
		return nil, nil
	}

	var mappings []ColumnMapping
	if err := json.Unmarshal([]byte(raw), &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

func EncodeMappings(mappings []ColumnMapping) (string, error) {
	b, err := json.Marshal(mappings)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
