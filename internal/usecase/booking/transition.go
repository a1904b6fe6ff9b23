package booking

import (
	"context"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/events"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/timezone"
)

type TransitionBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewTransitionBooking(
	repo domain.Repository,
	ev *events.Dispatcher,
	tz string,
) *TransitionBooking {
	return &TransitionBooking{
		repo:   repo,
		events: ev,
		tz:     tz,
	}
}

// Execute aplica una acción de ciclo de vida. Como el estado es parte del
// conjunto validado, una transición hacia un estado activo vuelve a pasar
// por la ventana de la cancha y por el chequeo de solape; las salidas a
// draft/cancelled quedan exentas.
func (uc *TransitionBooking) Execute(
	ctx context.Context,
	bookingID uint,
	action domain.Action,
	userID *uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	previous := bk.State
	now := timezone.NowIn(uc.tz)

	if err := domain.Apply(bk, action, now); err != nil {
		return nil, err
	}

	if err := domain.CheckWindow(&bk.Field, bk); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		BookingID: bk.ID,
		UserID:    userID,
		Action:    "booking_" + string(action),
		Metadata: map[string]any{
			"from": previous,
			"to":   bk.State,
		},
	})

	return bk, nil
}
