package booking

import "github.com/canchalibre/field-booking/internal/httperr"

// ===============================
// Booking State
// ===============================

type State string

const (
	StateDraft      State = "draft"
	StatePending    State = "pending"
	StateConfirmed  State = "confirmed"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

func InitialState() State {
	return StateDraft
}

// IsValid reporta si s es uno de los seis estados conocidos.
func (s State) IsValid() bool {
	switch s {
	case StateDraft, StatePending, StateConfirmed,
		StateInProgress, StateCompleted, StateCancelled:
		return true
	}
	return false
}

// IsActive: estados que ocupan la cancha y cuentan para solapamientos.
func (s State) IsActive() bool {
	return s == StatePending || s == StateConfirmed || s == StateInProgress
}

// IsExempt: estados que no pasan por el validador de agenda.
func (s State) IsExempt() bool {
	return s == StateDraft || s == StateCancelled
}

// ActiveStates en el orden en que se consultan en la base.
func ActiveStates() []string {
	return []string{
		string(StatePending),
		string(StateConfirmed),
		string(StateInProgress),
	}
}

// ===============================
// Transition guards
// ===============================

func CanConfirm(current State) error {
	if current != StateDraft && current != StatePending {
		return httperr.ErrBusiness("invalid_state_for_confirm")
	}
	return nil
}

func CanStart(current State) error {
	if current != StateConfirmed {
		return httperr.ErrBusiness("must_be_confirmed_to_start")
	}
	return nil
}

func CanComplete(current State) error {
	if current != StateInProgress {
		return httperr.ErrBusiness("must_be_in_progress_to_complete")
	}
	return nil
}

func CanCancel(current State) error {
	if current == StateCompleted || current == StateCancelled {
		return httperr.ErrBusiness("cannot_cancel_terminal_booking")
	}
	return nil
}
