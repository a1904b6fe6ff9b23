package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "06:00", FormatHour(6))
	assert.Equal(t, "21:30", FormatHour(21.5))
	assert.Equal(t, "09:45", FormatHour(9.75))
	assert.Equal(t, "23:00", FormatHour(22.9999))
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"06:00", 6},
		{"21:30", 21.5},
		{"9:45", 9.75},
		{"21.5", 21.5},
		{" 18:00 ", 18},
	}

	for _, tt := range tests {
		got, err := ParseHour(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}

	for _, bad := range []string{"25:00", "10:75", "-1", "abc", "12:xx"} {
		_, err := ParseHour(bad)
		assert.Error(t, err, bad)
	}
}
