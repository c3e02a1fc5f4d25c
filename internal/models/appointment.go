package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Email    string `gorm:"size:100;not null" json:"email"`

	// service and doctor names are snapshots taken at booking time so the
	// record survives later edits or deletes of the referenced rows
	ServiceID   uint   `json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`
	DoctorID    uint   `gorm:"index:idx_appointments_doctor_date" json:"doctor_id"`
	DoctorName  string `gorm:"size:100" json:"doctor_name"`

	Date string `gorm:"size:10;index:idx_appointments_doctor_date" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5" json:"time"`                                     // HH:MM

	Notes  string `gorm:"size:255" json:"notes"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
