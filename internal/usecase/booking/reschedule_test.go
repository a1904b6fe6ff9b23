package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canchalibre/field-booking/internal/events"
	"github.com/canchalibre/field-booking/internal/httperr"
)

func setupReschedule() (*fakeRepo, *CreateBooking, *RescheduleBooking) {
	repo := newFakeRepo()
	repo.fields[1] = testField()

	ev := events.NewDispatcher(nil)
	create := NewCreateBooking(repo, &fakeSequence{}, ev, "UTC")
	reschedule := NewRescheduleBooking(repo, ev, "UTC")
	return repo, create, reschedule
}

func fptr(v float64) *float64 { return &v }

func TestRescheduleMovesAndReprices(t *testing.T) {
	_, create, reschedule := setupReschedule()
	ctx := context.Background()

	bk, err := create.Execute(ctx, CreateBookingInput{
		CustomerPhone: "1", FieldID: 1, Date: futureDate(),
		StartTime: 10, EndTime: 12, State: "confirmed",
	})
	require.NoError(t, err)
	require.InDelta(t, 20.0, bk.TotalPrice, 1e-9) // tarifa base de día

	// moverla a la noche: cambia la tarifa
	moved, err := reschedule.Execute(ctx, RescheduleBookingInput{
		BookingID: bk.ID,
		StartTime: fptr(19),
		EndTime:   fptr(21),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, moved.Duration, 1e-9)
	assert.InDelta(t, 40.0, moved.TotalPrice, 1e-9) // 20 * 2 nocturna
}

func TestRescheduleIntoConflictRejected(t *testing.T) {
	_, create, reschedule := setupReschedule()
	ctx := context.Background()
	date := futureDate()

	first, err := create.Execute(ctx, CreateBookingInput{
		CustomerPhone: "1", FieldID: 1, Date: date,
		StartTime: 10, EndTime: 12, State: "confirmed",
	})
	require.NoError(t, err)

	second, err := create.Execute(ctx, CreateBookingInput{
		CustomerPhone: "2", FieldID: 1, Date: date,
		StartTime: 14, EndTime: 16, State: "confirmed",
	})
	require.NoError(t, err)

	_, err = reschedule.Execute(ctx, RescheduleBookingInput{
		BookingID: second.ID,
		StartTime: fptr(11),
		EndTime:   fptr(13),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "conflicting_booking"))
	assert.Equal(t, first.Reference, httperr.BusinessRef(err))
}

func TestRescheduleOutsideWindowRejected(t *testing.T) {
	_, create, reschedule := setupReschedule()
	ctx := context.Background()

	bk, err := create.Execute(ctx, CreateBookingInput{
		CustomerPhone: "1", FieldID: 1, Date: futureDate(),
		StartTime: 10, EndTime: 12, State: "confirmed",
	})
	require.NoError(t, err)

	_, err = reschedule.Execute(ctx, RescheduleBookingInput{
		BookingID: bk.ID,
		StartTime: fptr(22),
		EndTime:   fptr(24),
	})
	assert.True(t, httperr.IsBusiness(err, "after_closing"))
}

func TestRescheduleUnknownField(t *testing.T) {
	_, create, reschedule := setupReschedule()
	ctx := context.Background()

	bk, err := create.Execute(ctx, CreateBookingInput{
		CustomerPhone: "1", FieldID: 1, Date: futureDate(),
		StartTime: 10, EndTime: 12, State: "confirmed",
	})
	require.NoError(t, err)

	missing := uint(99)
	_, err = reschedule.Execute(ctx, RescheduleBookingInput{
		BookingID: bk.ID,
		FieldID:   &missing,
	})
	assert.True(t, httperr.IsBusiness(err, "field_not_found"))
}
