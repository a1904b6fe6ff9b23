package events

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	bookingID uint,
	userID *uint,
	action string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	ev := models.BookingEvent{
		BookingID: bookingID,
		UserID:    userID,
		Action:    action,
		Metadata:  metaJSON,
	}

	return l.db.Create(&ev).Error
}
