package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canchalibre/field-booking/internal/models"
)

var (
	saturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
)

func TestPriceTierPrecedence(t *testing.T) {
	f := &models.Field{BaseRate: 10, WeekendRate: 15, NightRate: 20}

	tests := []struct {
		name      string
		date      time.Time
		startTime float64
		duration  float64
		want      float64
	}{
		{"weekday base", tuesday, 10, 2, 20},
		{"weekday night", tuesday, 19, 2, 40},
		{"night boundary at 18", tuesday, 18, 1, 20},
		{"just before night", tuesday, 17.5, 1, 10},
		{"saturday day", saturday, 10, 2, 30},
		{"weekend evening keeps weekend rate", saturday, 19, 2, 30},
		{"sunday", sunday, 8, 1.5, 22.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Price(f, tt.date, tt.startTime, tt.duration), 1e-9)
		})
	}
}

func TestPriceFallsThroughUnsetTiers(t *testing.T) {
	// sin tarifa de fin de semana: un sábado de noche cae a la nocturna
	f := &models.Field{BaseRate: 10, NightRate: 20}
	assert.InDelta(t, 40.0, Price(f, saturday, 19, 2), 1e-9)

	// sábado de día sin tarifa de finde: base
	assert.InDelta(t, 20.0, Price(f, saturday, 10, 2), 1e-9)

	// sin nocturna tampoco: siempre base
	plain := &models.Field{BaseRate: 10}
	assert.InDelta(t, 20.0, Price(plain, saturday, 19, 2), 1e-9)
}

func TestPriceDegenerateInputs(t *testing.T) {
	f := &models.Field{BaseRate: 10}

	assert.Zero(t, Price(nil, tuesday, 10, 2))
	assert.Zero(t, Price(f, tuesday, 10, 0))
	assert.Zero(t, Price(f, tuesday, 10, -1))
}
