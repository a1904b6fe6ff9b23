package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/models"
)

type Slot struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Available bool    `json:"available"`
}

// GenerateSlots produce la secuencia de bloques reservables de una cancha
// para una fecha, marcando como ocupados los que chocan con reservas
// activas. Es una función pura: el llamador trae las reservas del día y
// el resultado se recalcula en cada consulta, nunca se cachea.
func GenerateSlots(f *models.Field, date time.Time, active []models.Booking) []Slot {
	if !DayEnabled(f, WeekdayIndex(date)) {
		return []Slot{}
	}

	slots := []Slot{}
	for cur := f.OpeningTime; cur+f.SlotDuration <= f.ClosingTime; cur += f.SlotDuration {
		slots = append(slots, Slot{
			StartTime: cur,
			EndTime:   cur + f.SlotDuration,
			Available: true,
		})
	}

	for _, bk := range active {
		for i := range slots {
			if Overlaps(bk.StartTime, bk.EndTime, slots[i].StartTime, slots[i].EndTime) {
				slots[i].Available = false
			}
		}
	}

	return slots
}
