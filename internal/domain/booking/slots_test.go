package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canchalibre/field-booking/internal/models"
)

func allDaysField() *models.Field {
	return &models.Field{
		Code:               "F1",
		OpeningTime:        6,
		ClosingTime:        23,
		SlotDuration:       1.5,
		AvailableMonday:    true,
		AvailableTuesday:   true,
		AvailableWednesday: true,
		AvailableThursday:  true,
		AvailableFriday:    true,
		AvailableSaturday:  true,
		AvailableSunday:    true,
	}
}

// martes
var tuesday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateSlotsCoversOpeningHours(t *testing.T) {
	f := allDaysField()

	slots := GenerateSlots(f, tuesday, nil)
	require.NotEmpty(t, slots)

	// 6.0 a 23.0 con bloques de 1.5h: el último arranca a las 21:00,
	// no hay bloque a las 22:30 porque 22.5+1.5 > 23.
	last := slots[len(slots)-1]
	assert.Equal(t, 21.0, last.StartTime)
	assert.Equal(t, 22.5, last.EndTime)

	for i, s := range slots {
		assert.InDelta(t, f.SlotDuration, s.EndTime-s.StartTime, 1e-9)
		assert.True(t, s.Available)
		assert.GreaterOrEqual(t, s.StartTime, f.OpeningTime)
		assert.LessOrEqual(t, s.EndTime, f.ClosingTime)

		if i > 0 {
			// ascendentes y sin solaparse entre sí
			assert.GreaterOrEqual(t, s.StartTime, slots[i-1].EndTime)
		}
	}
}

func TestGenerateSlotsDisabledWeekday(t *testing.T) {
	f := allDaysField()
	f.AvailableTuesday = false

	slots := GenerateSlots(f, tuesday, nil)
	assert.Empty(t, slots)
}

func TestGenerateSlotsPartialRemainderDropped(t *testing.T) {
	f := allDaysField()
	f.OpeningTime = 8
	f.ClosingTime = 12.5
	f.SlotDuration = 2

	slots := GenerateSlots(f, tuesday, nil)
	require.Len(t, slots, 2)
	assert.Equal(t, 8.0, slots[0].StartTime)
	assert.Equal(t, 10.0, slots[1].StartTime)
	assert.Equal(t, 12.0, slots[1].EndTime)
}

func TestGenerateSlotsMarksOccupied(t *testing.T) {
	f := allDaysField()
	f.SlotDuration = 1

	active := []models.Booking{
		{StartTime: 10, EndTime: 12, State: string(StateConfirmed)},
		{StartTime: 17.5, EndTime: 18.5, State: string(StatePending)},
	}

	slots := GenerateSlots(f, tuesday, active)
	byStart := map[float64]Slot{}
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.True(t, byStart[9].Available)
	assert.False(t, byStart[10].Available)
	assert.False(t, byStart[11].Available)
	assert.True(t, byStart[12].Available)

	// la reserva 17:30–18:30 pisa los bloques de 17 y de 18
	assert.False(t, byStart[17].Available)
	assert.False(t, byStart[18].Available)
	assert.True(t, byStart[19].Available)
}

func TestGenerateSlotsBoundaryBookingDoesNotBlockNeighbor(t *testing.T) {
	f := allDaysField()
	f.SlotDuration = 1

	// termina exactamente donde empieza el bloque de las 11
	active := []models.Booking{{StartTime: 10, EndTime: 11}}

	slots := GenerateSlots(f, tuesday, active)
	for _, s := range slots {
		if s.StartTime == 11 {
			assert.True(t, s.Available)
		}
		if s.StartTime == 10 {
			assert.False(t, s.Available)
		}
	}
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 float64
		want           bool
	}{
		{"disjoint", 6, 8, 9, 10, false},
		{"touching boundary", 6, 8, 8, 10, false},
		{"partial overlap", 6, 9, 8, 10, true},
		{"contained", 6, 12, 8, 10, true},
		{"identical", 8, 10, 8, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
