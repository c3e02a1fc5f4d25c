package models

import "time"

// WorkingHours holds the configured interval for one doctor on one weekday.
// DayOfWeek is Monday=0..Sunday=6. At most one row per (doctor, weekday).
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID  uint `gorm:"uniqueIndex:idx_doctor_day;not null" json:"doctor_id"`
	DayOfWeek int  `gorm:"uniqueIndex:idx_doctor_day;not null" json:"day_of_week"`

	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	IsHoliday bool `gorm:"default:false" json:"is_holiday"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
