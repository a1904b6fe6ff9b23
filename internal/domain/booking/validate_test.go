package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
)

func TestValidateFieldConfig(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.Field)
		wantCode string
	}{
		{"valid", func(f *models.Field) {}, ""},
		{"opening negative", func(f *models.Field) { f.OpeningTime = -1 }, "opening_time_out_of_range"},
		{"closing above 24", func(f *models.Field) { f.ClosingTime = 25 }, "closing_time_out_of_range"},
		{"opening equals closing", func(f *models.Field) { f.OpeningTime = 10; f.ClosingTime = 10 }, "closing_before_opening"},
		{"zero slot", func(f *models.Field) { f.SlotDuration = 0 }, "invalid_slot_duration"},
		{"slot above 8h", func(f *models.Field) { f.SlotDuration = 8.5 }, "invalid_slot_duration"},
		{"negative rate", func(f *models.Field) { f.BaseRate = -5 }, "negative_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := allDaysField()
			tt.mutate(f)

			err := ValidateFieldConfig(f)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode))
		})
	}
}

func TestCheckWindow(t *testing.T) {
	f := allDaysField()
	f.AvailableSunday = false

	tests := []struct {
		name     string
		bk       models.Booking
		wantCode string
	}{
		{
			"inside window",
			models.Booking{Date: tuesday, StartTime: 10, EndTime: 12, State: "confirmed"},
			"",
		},
		{
			"before opening",
			models.Booking{Date: tuesday, StartTime: 5, EndTime: 7, State: "pending"},
			"before_opening",
		},
		{
			"after closing",
			models.Booking{Date: tuesday, StartTime: 22, EndTime: 23.5, State: "in_progress"},
			"after_closing",
		},
		{
			"disabled weekday",
			models.Booking{Date: sunday, StartTime: 10, EndTime: 12, State: "confirmed"},
			"weekday_unavailable",
		},
		{
			"draft skips every check",
			models.Booking{Date: sunday, StartTime: 2, EndTime: 4, State: "draft"},
			"",
		},
		{
			"cancelled skips every check",
			models.Booking{Date: sunday, StartTime: 2, EndTime: 4, State: "cancelled"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWindow(f, &tt.bk)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.wantCode))
		})
	}
}

func TestCheckTimes(t *testing.T) {
	require.NoError(t, CheckTimes(&models.Booking{StartTime: 10, EndTime: 11}))

	err := CheckTimes(&models.Booking{StartTime: 11, EndTime: 11})
	assert.True(t, httperr.IsBusiness(err, "end_before_start"))
}

func TestCheckDateOnlyBlocksDraft(t *testing.T) {
	today := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	err := CheckDate(&models.Booking{Date: yesterday, State: "draft"}, today)
	assert.True(t, httperr.IsBusiness(err, "past_date"))

	// mismo día: permitido aunque ya sea la tarde
	assert.NoError(t, CheckDate(&models.Booking{Date: today.Truncate(24 * time.Hour), State: "draft"}, today))

	// retrodatar una confirmada es un flujo privilegiado, no se bloquea
	assert.NoError(t, CheckDate(&models.Booking{Date: yesterday, State: "confirmed"}, today))
	assert.NoError(t, CheckDate(&models.Booking{Date: yesterday, State: "pending"}, today))
}
