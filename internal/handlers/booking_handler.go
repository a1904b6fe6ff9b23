package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/dto"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/httpresp"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/usecase/booking"
)

type BookingHandler struct {
	db         *gorm.DB
	create     *booking.CreateBooking
	reschedule *booking.RescheduleBooking
	transition *booking.TransitionBooking
	tz         string
}

func NewBookingHandler(
	db *gorm.DB,
	create *booking.CreateBooking,
	reschedule *booking.RescheduleBooking,
	transition *booking.TransitionBooking,
	tz string,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		create:     create,
		reschedule: reschedule,
		transition: transition,
		tz:         tz,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	FieldID   uint    `json:"field_id" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`

	Notes        string `json:"notes"`
	PlayersCount int    `json:"players_count"`

	State string `json:"state"`
}

type RescheduleBookingRequest struct {
	FieldID   *uint    `json:"field_id,omitempty"`
	Date      *string  `json:"date,omitempty"`
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Players   *int     `json:"players_count,omitempty"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	bk, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		FieldID:       req.FieldID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Notes:         req.Notes,
		PlayersCount:  req.PlayersCount,
		State:         req.State,
		UserID:        currentUserID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, bk)
}

// List arma el tablero del día (o un rango) con filtros opcionales por
// cancha y estado.
func (h *BookingHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Booking{}).
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Joins("JOIN fields ON fields.id = bookings.field_id")

	if date := c.Query("date"); date != "" {
		day, err := parseDateInVenue(h.tz, date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida, use YYYY-MM-DD.")
			return
		}
		q = q.Where("bookings.date = ?", day.Format("2006-01-02"))
	} else {
		if from := c.Query("from"); from != "" {
			day, err := parseDateInVenue(h.tz, from)
			if err != nil {
				httperr.BadRequest(c, "invalid_date", "Fecha 'from' inválida.")
				return
			}
			q = q.Where("bookings.date >= ?", day.Format("2006-01-02"))
		}
		if to := c.Query("to"); to != "" {
			day, err := parseDateInVenue(h.tz, to)
			if err != nil {
				httperr.BadRequest(c, "invalid_date", "Fecha 'to' inválida.")
				return
			}
			q = q.Where("bookings.date <= ?", day.Format("2006-01-02"))
		}
	}

	if state := strings.TrimSpace(c.Query("state")); state != "" {
		if !domain.State(state).IsValid() {
			httperr.BadRequest(c, "invalid_state", "Estado desconocido.")
			return
		}
		q = q.Where("bookings.state = ?", state)
	}

	if fieldID := c.Query("field_id"); fieldID != "" {
		id, err := strconv.Atoi(fieldID)
		if err != nil {
			httperr.BadRequest(c, "invalid_field_id", "field_id inválido.")
			return
		}
		q = q.Where("bookings.field_id = ?", id)
	}

	var rows []dto.BookingListDTO
	err := q.
		Select(`bookings.id, bookings.reference, bookings.date,
			bookings.start_time, bookings.end_time, bookings.state,
			bookings.total_price,
			customers.name AS customer_name,
			fields.name AS field_name, fields.code AS field_code`).
		Order("bookings.date ASC, bookings.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar reservas.")
		return
	}

	httpresp.List(c, rows)
}

func (h *BookingHandler) Get(c *gin.Context) {
	var bk models.Booking
	err := h.db.
		Preload("Customer").
		Preload("Field").
		First(&bk, c.Param("id")).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Error al consultar la reserva.")
		return
	}

	httpresp.OK(c, bk)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	bk, err := h.reschedule.Execute(c.Request.Context(), booking.RescheduleBookingInput{
		BookingID: uint(id),
		FieldID:   req.FieldID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
		Players:   req.Players,
		UserID:    currentUserID(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bk)
}

// Transition resuelve POST /bookings/:id/:action para las seis acciones
// del ciclo de vida.
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	action := domain.Action(c.Param("action"))
	switch action {
	case domain.ActionConfirm, domain.ActionSetPending, domain.ActionStart,
		domain.ActionComplete, domain.ActionCancel, domain.ActionResetToDraft:
	default:
		httperr.BadRequest(c, "unknown_action", "Acción desconocida.")
		return
	}

	bk, err := h.transition.Execute(c.Request.Context(), uint(id), action, currentUserID(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bk)
}
