package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/timezone"
)

func parseDate(dateStr, tz string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}
