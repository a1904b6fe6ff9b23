package models

import "time"

// Registro append-only de lo que le pasa a cada reserva.
type BookingEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint   `gorm:"index;not null" json:"booking_id"`
	UserID    *uint  `json:"user_id"`
	Action    string `gorm:"size:50;not null" json:"action"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
