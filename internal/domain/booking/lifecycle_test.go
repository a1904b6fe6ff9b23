package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
)

var now = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

func bookingIn(s State) *models.Booking {
	return &models.Booking{Reference: "RES-2026-00001", State: string(s)}
}

func TestConfirm(t *testing.T) {
	for _, from := range []State{StateDraft, StatePending} {
		bk := bookingIn(from)
		require.NoError(t, Confirm(bk, now))
		assert.Equal(t, string(StateConfirmed), bk.State)
		require.NotNil(t, bk.ConfirmationDate)
		assert.Equal(t, now, *bk.ConfirmationDate)
	}

	for _, from := range []State{StateConfirmed, StateInProgress, StateCompleted, StateCancelled} {
		bk := bookingIn(from)
		err := Confirm(bk, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state_for_confirm"), "from %s", from)
		assert.Equal(t, string(from), bk.State)
	}
}

func TestStartRequiresConfirmed(t *testing.T) {
	bk := bookingIn(StateConfirmed)
	require.NoError(t, Start(bk))
	assert.Equal(t, string(StateInProgress), bk.State)

	for _, from := range []State{StateDraft, StatePending, StateInProgress, StateCompleted, StateCancelled} {
		bk := bookingIn(from)
		err := Start(bk)
		assert.True(t, httperr.IsBusiness(err, "must_be_confirmed_to_start"))
	}
}

func TestCompleteRequiresInProgress(t *testing.T) {
	bk := bookingIn(StateInProgress)
	require.NoError(t, Complete(bk))
	assert.Equal(t, string(StateCompleted), bk.State)

	err := Complete(bookingIn(StateConfirmed))
	assert.True(t, httperr.IsBusiness(err, "must_be_in_progress_to_complete"))
}

func TestCancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []State{StateDraft, StatePending, StateConfirmed, StateInProgress} {
		bk := bookingIn(from)
		require.NoError(t, Cancel(bk))
		assert.Equal(t, string(StateCancelled), bk.State)
	}
}

func TestCancelTerminalIsRejectedUnchanged(t *testing.T) {
	for _, from := range []State{StateCompleted, StateCancelled} {
		bk := bookingIn(from)
		err := Cancel(bk)
		assert.True(t, httperr.IsBusiness(err, "cannot_cancel_terminal_booking"))
		assert.Equal(t, string(from), bk.State)
	}
}

func TestUnconstrainedTransitions(t *testing.T) {
	for _, from := range []State{StateDraft, StatePending, StateConfirmed, StateInProgress, StateCompleted, StateCancelled} {
		bk := bookingIn(from)
		require.NoError(t, SetPending(bk))
		assert.Equal(t, string(StatePending), bk.State)

		bk = bookingIn(from)
		require.NoError(t, ResetToDraft(bk))
		assert.Equal(t, string(StateDraft), bk.State)
	}
}

func TestApplyDispatch(t *testing.T) {
	bk := bookingIn(StatePending)
	require.NoError(t, Apply(bk, ActionConfirm, now))
	require.NoError(t, Apply(bk, ActionStart, now))
	require.NoError(t, Apply(bk, ActionComplete, now))
	assert.Equal(t, string(StateCompleted), bk.State)

	err := Apply(bk, Action("explode"), now)
	assert.True(t, httperr.IsBusiness(err, "unknown_action"))
}

func TestStateClassification(t *testing.T) {
	assert.True(t, StatePending.IsActive())
	assert.True(t, StateConfirmed.IsActive())
	assert.True(t, StateInProgress.IsActive())
	assert.False(t, StateDraft.IsActive())
	assert.False(t, StateCompleted.IsActive())

	assert.True(t, StateDraft.IsExempt())
	assert.True(t, StateCancelled.IsExempt())
	assert.False(t, StateConfirmed.IsExempt())

	assert.False(t, State("bogus").IsValid())
	assert.Equal(t, []string{"pending", "confirmed", "in_progress"}, ActiveStates())
}
