package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:30;uniqueIndex;not null" json:"reference"`

	// Token opaco para acceso del cliente sin login (detalle / cancelación).
	AccessToken string `gorm:"size:40;index" json:"-"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	FieldID uint  `gorm:"index:idx_bookings_board,priority:1" json:"field_id"`
	Field   Field `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"field"`

	Date time.Time `gorm:"type:date;not null;index:idx_bookings_board,priority:2" json:"date"`

	StartTime float64 `gorm:"not null" json:"start_time"`
	EndTime   float64 `gorm:"not null;check:chk_booking_times,end_time > start_time" json:"end_time"`

	Duration   float64 `json:"duration"`
	TotalPrice float64 `json:"total_price"`

	State string `gorm:"size:20;default:'draft';index:idx_bookings_board,priority:3" json:"state"`

	Notes        string `gorm:"size:500" json:"notes"`
	PlayersCount int    `json:"players_count"`

	ConfirmationDate *time.Time `json:"confirmation_date"`

	// Usuario de staff responsable de la reserva, si la creó el mostrador.
	UserID *uint `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
