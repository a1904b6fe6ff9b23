package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Action es el nombre externo de cada transición de estado.
type Action string

const (
	ActionConfirm      Action = "confirm"
	ActionSetPending   Action = "set_pending"
	ActionStart        Action = "start"
	ActionComplete     Action = "complete"
	ActionCancel       Action = "cancel"
	ActionResetToDraft Action = "reset_to_draft"
)

func Confirm(bk *models.Booking, now time.Time) error {
	if err := CanConfirm(State(bk.State)); err != nil {
		return err
	}

	bk.State = string(StateConfirmed)
	bk.ConfirmationDate = &now
	return nil
}

func SetPending(bk *models.Booking) error {
	bk.State = string(StatePending)
	return nil
}

func Start(bk *models.Booking) error {
	if err := CanStart(State(bk.State)); err != nil {
		return err
	}

	bk.State = string(StateInProgress)
	return nil
}

func Complete(bk *models.Booking) error {
	if err := CanComplete(State(bk.State)); err != nil {
		return err
	}

	bk.State = string(StateCompleted)
	return nil
}

func Cancel(bk *models.Booking) error {
	if err := CanCancel(State(bk.State)); err != nil {
		return err
	}

	bk.State = string(StateCancelled)
	return nil
}

func ResetToDraft(bk *models.Booking) error {
	bk.State = string(StateDraft)
	return nil
}

// Apply ejecuta la acción pedida sobre la reserva.
func Apply(bk *models.Booking, action Action, now time.Time) error {
	switch action {
	case ActionConfirm:
		return Confirm(bk, now)
	case ActionSetPending:
		return SetPending(bk)
	case ActionStart:
		return Start(bk)
	case ActionComplete:
		return Complete(bk)
	case ActionCancel:
		return Cancel(bk)
	case ActionResetToDraft:
		return ResetToDraft(bk)
	}
	return httperr.ErrBusiness("unknown_action")
}
