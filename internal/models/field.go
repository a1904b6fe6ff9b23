package models

import "time"

type Field struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`

	SportType   string `gorm:"size:30;not null" json:"sport_type"`
	Description string `gorm:"size:500" json:"description"`

	// Horas en formato fraccional 24h (ej: 6.5 = 06:30).
	OpeningTime  float64 `gorm:"default:6" json:"opening_time"`
	ClosingTime  float64 `gorm:"default:23" json:"closing_time"`
	SlotDuration float64 `gorm:"default:1" json:"slot_duration"`

	// Tarifas por hora. Cero significa tarifa no configurada.
	BaseRate    float64 `gorm:"not null;default:0" json:"base_rate"`
	WeekendRate float64 `json:"weekend_rate"`
	NightRate   float64 `json:"night_rate"`

	AvailableMonday    bool `gorm:"default:true" json:"available_monday"`
	AvailableTuesday   bool `gorm:"default:true" json:"available_tuesday"`
	AvailableWednesday bool `gorm:"default:true" json:"available_wednesday"`
	AvailableThursday  bool `gorm:"default:true" json:"available_thursday"`
	AvailableFriday    bool `gorm:"default:true" json:"available_friday"`
	AvailableSaturday  bool `gorm:"default:true" json:"available_saturday"`
	AvailableSunday    bool `gorm:"default:true" json:"available_sunday"`

	SurfaceType string `gorm:"size:30" json:"surface_type"`
	HasLighting bool   `gorm:"default:true" json:"has_lighting"`
	HasRoof     bool   `json:"has_roof"`
	MaxPlayers  int    `json:"max_players"`
	PhotoURL    string `gorm:"size:255" json:"photo_url"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
