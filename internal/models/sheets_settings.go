package models

import "time"

const (
	SheetsModeAutomatic = "automatic"
	SheetsModeManual    = "manual"
)

// SheetsSettings is a singleton row (id=1) with the Google Sheets export
// configuration. Mappings is an ordered JSON array of {field, column} pairs;
// the append order of exported values follows it.
type SheetsSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Connected     bool   `gorm:"default:false" json:"connected"`
	SpreadsheetID string `gorm:"size:100" json:"spreadsheet_id"`
	SheetName     string `gorm:"size:100" json:"sheet_name"`

	Mappings string `gorm:"type:text" json:"mappings"`

	// "automatic" appends a row on every booking, "manual" only via sync
	Mode string `gorm:"size:20;default:'automatic'" json:"mode"`

	UpdatedAt time.Time `json:"updated_at"`
}
