package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Field
// --------------------------------------------------

func (r *BookingGormRepository) GetField(
	ctx context.Context,
	id uint,
) (*models.Field, error) {

	var field models.Field
	if err := r.db.WithContext(ctx).First(&field, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("field_not_found")
		}
		return nil, err
	}
	return &field, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (create / update under lock)
// --------------------------------------------------

// assertNoOverlap bloquea las reservas activas de la cancha+fecha y
// verifica el solape dentro de la transacción. Sin el FOR UPDATE dos
// peticiones concurrentes pasan las dos el chequeo y se pisan.
func assertNoOverlap(tx *gorm.DB, bk *models.Booking) error {
	var conflicts []models.Booking
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"field_id = ? AND date = ? AND id <> ? AND state IN ? AND start_time < ? AND end_time > ?",
			bk.FieldID,
			bk.Date,
			bk.ID,
			domain.ActiveStates(),
			bk.EndTime,
			bk.StartTime,
		).
		Find(&conflicts).Error; err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return httperr.ErrBusinessRef("conflicting_booking", conflicts[0].Reference)
	}

	return nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.State(bk.State).IsActive() {
			if err := assertNoOverlap(tx, bk); err != nil {
				return err
			}
		}
		return tx.Create(bk).Error
	})
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if domain.State(bk.State).IsActive() {
			if err := assertNoOverlap(tx, bk); err != nil {
				return err
			}
		}
		// sin asociaciones: el update no debe reescribir cliente ni cancha
		return tx.Omit(clause.Associations).Save(bk).Error
	})
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Field").
		First(&bk, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	return &bk, nil
}

func (r *BookingGormRepository) GetBookingByReference(
	ctx context.Context,
	reference string,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Field").
		Where("reference = ?", reference).
		First(&bk).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	return &bk, nil
}

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	fieldID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "reference", "start_time", "end_time", "state").
		Where(
			"field_id = ? AND date = ? AND state IN ?",
			fieldID, date, domain.ActiveStates(),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
