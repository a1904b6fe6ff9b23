package booking

import (
	"context"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
	tz   string
}

func NewGetAvailability(repo domain.Repository, tz string) *GetAvailability {
	return &GetAvailability{repo: repo, tz: tz}
}

// Execute recalcula los bloques disponibles de una cancha para una fecha.
// Nunca se sirve de cache: las reservas cambian entre consulta y consulta.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	fieldID uint,
	dateStr string,
) ([]domain.Slot, error) {

	field, err := uc.repo.GetField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	// una cancha desactivada desaparece de la generación de slots
	if !field.Active {
		return nil, httperr.ErrBusiness("field_not_found")
	}

	date, err := parseDate(dateStr, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if date.Before(timezone.Today(uc.tz)) {
		return nil, httperr.ErrBusiness("past_date")
	}

	active, err := uc.repo.ListActiveBookings(ctx, field.ID, date)
	if err != nil {
		return nil, err
	}

	return domain.GenerateSlots(field, date, active), nil
}
