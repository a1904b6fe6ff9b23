package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/models"
)

// Las tarifas nocturnas aplican a partir de las 18:00.
const nightStart = 18.0

// Rate elige la tarifa horaria para una fecha y hora de inicio.
// Precedencia fija: fin de semana, luego nocturna, luego base. Una tarifa
// en cero se considera no configurada y cede a la siguiente.
func Rate(f *models.Field, date time.Time, startTime float64) float64 {
	weekday := WeekdayIndex(date)

	if (weekday == 5 || weekday == 6) && f.WeekendRate > 0 {
		return f.WeekendRate
	}

	if startTime >= nightStart && f.NightRate > 0 {
		return f.NightRate
	}

	return f.BaseRate
}

// Price calcula el total de una reserva. Determinista y sin efectos.
func Price(f *models.Field, date time.Time, startTime, duration float64) float64 {
	if f == nil || duration <= 0 {
		return 0
	}
	return Rate(f, date, startTime) * duration
}
