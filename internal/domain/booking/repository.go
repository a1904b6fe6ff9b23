package booking

import (
	"context"
	"time"

	"github.com/canchalibre/field-booking/internal/models"
)

type Repository interface {
	// -------- Field catalog --------
	GetField(
		ctx context.Context,
		id uint,
	) (*models.Field, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persiste la reserva dentro de una transacción que
	// bloquea las reservas activas de la misma cancha+fecha, para que
	// dos peticiones concurrentes no pasen las dos el chequeo de solape.
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	// UpdateBooking revalida el solape bajo el mismo bloqueo cuando la
	// reserva queda en estado activo.
	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	GetBookingByReference(
		ctx context.Context,
		reference string,
	) (*models.Booking, error)

	// ListActiveBookings devuelve las reservas pending/confirmed/
	// in_progress de una cancha en una fecha, orden ascendente.
	ListActiveBookings(
		ctx context.Context,
		fieldID uint,
		date time.Time,
	) ([]models.Booking, error)
}
