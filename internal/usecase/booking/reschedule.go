package booking

import (
	"context"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/events"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/timezone"
)

type RescheduleBookingInput struct {
	BookingID uint

	// Campos opcionales: nil deja el valor actual.
	FieldID   *uint
	Date      *string
	StartTime *float64
	EndTime   *float64
	Notes     *string
	Players   *int

	UserID *uint
}

type RescheduleBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewRescheduleBooking(
	repo domain.Repository,
	ev *events.Dispatcher,
	tz string,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:   repo,
		events: ev,
		tz:     tz,
	}
}

// Execute mueve una reserva de cancha, fecha u horario. Todo cambio que
// toca el tablero se revalida completo y se reprecia.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	dateChanged := false

	if in.FieldID != nil {
		bk.FieldID = *in.FieldID
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date, uc.tz)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		bk.Date = date
		dateChanged = true
	}
	if in.StartTime != nil {
		bk.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		bk.EndTime = *in.EndTime
	}
	if in.Notes != nil {
		bk.Notes = *in.Notes
	}
	if in.Players != nil {
		bk.PlayersCount = *in.Players
	}

	field, err := uc.repo.GetField(ctx, bk.FieldID)
	if err != nil {
		return nil, err
	}
	bk.Field = *field

	bk.Duration = bk.EndTime - bk.StartTime
	bk.TotalPrice = domain.Price(field, bk.Date, bk.StartTime, bk.Duration)

	if err := domain.CheckTimes(bk); err != nil {
		return nil, err
	}
	if err := domain.CheckWindow(field, bk); err != nil {
		return nil, err
	}
	if dateChanged {
		if err := domain.CheckDate(bk, timezone.NowIn(uc.tz)); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		BookingID: bk.ID,
		UserID:    in.UserID,
		Action:    "booking_rescheduled",
		Metadata: map[string]any{
			"field_id": bk.FieldID,
			"date":     bk.Date.Format("2006-01-02"),
			"start":    bk.StartTime,
			"end":      bk.EndTime,
			"price":    bk.TotalPrice,
		},
	})

	return bk, nil
}
