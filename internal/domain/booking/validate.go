package booking

import (
	"time"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
)

// ===============================
// Field configuration
// ===============================

const maxSlotDuration = 8.0

func ValidateFieldConfig(f *models.Field) error {
	if f.OpeningTime < 0 || f.OpeningTime > 24 {
		return httperr.ErrBusiness("opening_time_out_of_range")
	}
	if f.ClosingTime < 0 || f.ClosingTime > 24 {
		return httperr.ErrBusiness("closing_time_out_of_range")
	}
	if f.OpeningTime >= f.ClosingTime {
		return httperr.ErrBusiness("closing_before_opening")
	}
	if f.SlotDuration <= 0 || f.SlotDuration > maxSlotDuration {
		return httperr.ErrBusiness("invalid_slot_duration")
	}
	if f.BaseRate < 0 || f.WeekendRate < 0 || f.NightRate < 0 {
		return httperr.ErrBusiness("negative_rate")
	}
	return nil
}

// ===============================
// Booking window
// ===============================

// CheckTimes: restricción estructural, vale para cualquier estado.
func CheckTimes(bk *models.Booking) error {
	if bk.EndTime <= bk.StartTime {
		return httperr.ErrBusiness("end_before_start")
	}
	return nil
}

// CheckWindow valida la reserva contra el horario y los días habilitados
// de la cancha. Las reservas en draft o cancelled quedan exentas: un
// borrador todavía no ocupa la agenda y una cancelación siempre puede
// persistir aunque la configuración de la cancha haya cambiado.
func CheckWindow(f *models.Field, bk *models.Booking) error {
	if State(bk.State).IsExempt() {
		return nil
	}

	if bk.StartTime < f.OpeningTime {
		return httperr.ErrBusiness("before_opening")
	}
	if bk.EndTime > f.ClosingTime {
		return httperr.ErrBusiness("after_closing")
	}
	if !DayEnabled(f, WeekdayIndex(bk.Date)) {
		return httperr.ErrBusiness("weekday_unavailable")
	}

	return nil
}

// CheckDate rechaza fechas pasadas, pero solo mientras la reserva está en
// draft. Mover una reserva pending o confirmed al pasado queda permitido
// como retrodatado explícito de flujos privilegiados.
func CheckDate(bk *models.Booking, today time.Time) error {
	if State(bk.State) != StateDraft {
		return nil
	}

	y, m, d := today.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	if bk.Date.Before(startOfToday) {
		return httperr.ErrBusiness("past_date")
	}
	return nil
}
