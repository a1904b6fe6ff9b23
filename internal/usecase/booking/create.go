package booking

import (
	"context"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/events"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/sequence"
	"github.com/canchalibre/field-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// CustomerID directo (mostrador) o datos para resolver por teléfono
	// (portal público).
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	FieldID   uint
	Date      string // YYYY-MM-DD
	StartTime float64
	EndTime   float64

	Notes        string
	PlayersCount int

	// Estado inicial. Vacío = draft; la API permite el atajo directo a
	// pending o confirmed.
	State string

	// Staff responsable, nil cuando crea el portal.
	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	seq    sequence.Generator
	events *events.Dispatcher
	tz     string
}

func NewCreateBooking(
	repo domain.Repository,
	seq sequence.Generator,
	ev *events.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		seq:    seq,
		events: ev,
		tz:     tz,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	field, err := uc.repo.GetField(ctx, in.FieldID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	state := domain.InitialState()
	if in.State != "" {
		state = domain.State(in.State)
		if !state.IsValid() {
			return nil, httperr.ErrBusiness("invalid_state")
		}
	}

	customerID := in.CustomerID
	if customerID == 0 {
		if in.CustomerPhone == "" {
			return nil, httperr.ErrBusiness("missing_customer")
		}
		customer, err := uc.repo.GetOrCreateCustomer(
			ctx,
			in.CustomerName,
			in.CustomerPhone,
			in.CustomerEmail,
		)
		if err != nil {
			return nil, err
		}
		customerID = customer.ID
	}

	now := timezone.NowIn(uc.tz)

	reference, err := uc.seq.NextReference(ctx, now)
	if err != nil {
		return nil, err
	}

	bk := &models.Booking{
		Reference:    reference,
		AccessToken:  uc.seq.NewAccessToken(),
		CustomerID:   customerID,
		FieldID:      field.ID,
		Date:         date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Duration:     in.EndTime - in.StartTime,
		State:        string(state),
		Notes:        in.Notes,
		PlayersCount: in.PlayersCount,
		UserID:       in.UserID,
	}
	bk.TotalPrice = domain.Price(field, date, bk.StartTime, bk.Duration)

	if err := domain.CheckTimes(bk); err != nil {
		return nil, err
	}
	if err := domain.CheckWindow(field, bk); err != nil {
		return nil, err
	}
	if err := domain.CheckDate(bk, now); err != nil {
		return nil, err
	}

	// el chequeo de solape corre dentro de la transacción del repo
	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		BookingID: bk.ID,
		UserID:    in.UserID,
		Action:    "booking_created",
		Metadata: map[string]any{
			"reference": bk.Reference,
			"field_id":  bk.FieldID,
			"date":      in.Date,
			"start":     bk.StartTime,
			"end":       bk.EndTime,
			"state":     bk.State,
		},
	})

	return bk, nil
}
