package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/canchalibre/field-booking/internal/timezone"
)

func parseDateInVenue(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}

// FormatHour convierte una hora fraccional a "HH:MM" (ej: 21.5 → "21:30").
func FormatHour(h float64) string {
	hours := int(h)
	minutes := int(math.Round((h - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// ParseHour acepta "HH:MM" o un número fraccional ("21.5").
func ParseHour(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, err
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, err
		}
		if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
			return 0, fmt.Errorf("hour out of range: %s", s)
		}
		return float64(hours) + float64(minutes)/60, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 24 {
		return 0, fmt.Errorf("hour out of range: %s", s)
	}
	return v, nil
}
