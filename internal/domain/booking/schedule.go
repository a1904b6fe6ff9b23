package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/models"
)

// WeekdayIndex devuelve el día de la semana con lunes=0 ... domingo=6,
// que es la convención de los flags de disponibilidad de la cancha.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// DayEnabled consulta el flag de disponibilidad del día correspondiente.
func DayEnabled(f *models.Field, weekday int) bool {
	switch weekday {
	case 0:
		return f.AvailableMonday
	case 1:
		return f.AvailableTuesday
	case 2:
		return f.AvailableWednesday
	case 3:
		return f.AvailableThursday
	case 4:
		return f.AvailableFriday
	case 5:
		return f.AvailableSaturday
	case 6:
		return f.AvailableSunday
	}
	return false
}

// Overlaps aplica el test de intervalos semiabiertos [s1,e1) y [s2,e2).
func Overlaps(s1, e1, s2, e2 float64) bool {
	return s1 < e2 && s2 < e1
}
