package models

import "time"

// VerificationCode is keyed by the lower-cased email: re-issuing a code for
// the same address overwrites the previous one, and a successful validation
// deletes the row (single use).
type VerificationCode struct {
	Email string `gorm:"primaryKey;size:100" json:"email"`

	Code  string `gorm:"size:6;not null" json:"-"`
	Name  string `gorm:"size:100" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
