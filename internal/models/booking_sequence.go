package models

// Contador anual que respalda la numeración de referencias de reserva.
type BookingSequence struct {
	Year    int   `gorm:"primaryKey" json:"year"`
	Counter int64 `gorm:"not null;default:0" json:"counter"`
}
