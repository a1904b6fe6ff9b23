package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/cache"
	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/usecase/booking"
)

// PublicHandler expone el portal de clientes: catálogo, disponibilidad y
// reservas sin login. El acceso a una reserva concreta se protege con el
// token opaco que se entrega al crearla.
type PublicHandler struct {
	db           *gorm.DB
	repo         domain.Repository
	catalog      *cache.FieldCatalogCache
	availability *booking.GetAvailability
	create       *booking.CreateBooking
	transition   *booking.TransitionBooking
	tz           string
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	catalog *cache.FieldCatalogCache,
	availability *booking.GetAvailability,
	create *booking.CreateBooking,
	transition *booking.TransitionBooking,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		create:       create,
		transition:   transition,
		tz:           tz,
	}
}

// --------- Catálogo ---------

// ListFields sirve el catálogo público de canchas activas. Es la única
// consulta que pasa por redis: el catálogo cambia poco y los slots nunca
// se cachean.
func (h *PublicHandler) ListFields(c *gin.Context) {
	sportType := strings.ToLower(strings.TrimSpace(c.Query("sport_type")))

	if fields, ok := h.catalog.Get(c.Request.Context(), sportType); ok {
		c.JSON(http.StatusOK, fields)
		return
	}

	q := h.db.Where("active = ?", true)
	if sportType != "" {
		q = q.Where("sport_type = ?", sportType)
	}

	var fields []models.Field
	if err := q.Order("name ASC").Find(&fields).Error; err != nil {
		httperr.Internal(c, "failed_to_list_fields", "Error al listar canchas.")
		return
	}

	h.catalog.Set(c.Request.Context(), sportType, fields)

	c.JSON(http.StatusOK, fields)
}

// --------- Disponibilidad ---------

type slotView struct {
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Label     string  `json:"label"`
	Available bool    `json:"available"`
}

func (h *PublicHandler) GetSlots(c *gin.Context) {
	fieldID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), uint(fieldID), c.Query("date"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	views := make([]slotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotView{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Label:     FormatHour(s.StartTime) + " - " + FormatHour(s.EndTime),
			Available: s.Available,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"field_id": fieldID,
		"date":     c.Query("date"),
		"slots":    views,
	})
}

// --------- Reservas del portal ---------

type PublicBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	FieldID   uint    `json:"field_id" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`

	Notes        string `json:"notes"`
	PlayersCount int    `json:"players_count"`
}

type publicBookingView struct {
	Reference   string  `json:"reference"`
	AccessToken string  `json:"access_token,omitempty"`
	FieldName   string  `json:"field_name"`
	Date        string  `json:"date"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
	Label       string  `json:"label"`
	State       string  `json:"state"`
	TotalPrice  float64 `json:"total_price"`
}

func publicView(bk *models.Booking, withToken bool) publicBookingView {
	v := publicBookingView{
		Reference:  bk.Reference,
		FieldName:  bk.Field.Name,
		Date:       bk.Date.Format("2006-01-02"),
		StartTime:  bk.StartTime,
		EndTime:    bk.EndTime,
		Label:      FormatHour(bk.StartTime) + " - " + FormatHour(bk.EndTime),
		State:      bk.State,
		TotalPrice: bk.TotalPrice,
	}
	if withToken {
		v.AccessToken = bk.AccessToken
	}
	return v
}

// CreateBooking crea una reserva desde el portal. Nace en pending y se
// confirma en el acto, con la misma revalidación que una confirmación
// del tablero. El token devuelto es la única llave del cliente sobre su
// reserva.
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	bk, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		FieldID:       req.FieldID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Notes:         req.Notes,
		PlayersCount:  req.PlayersCount,
		State:         string(domain.StatePending),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	confirmed, err := h.transition.Execute(c.Request.Context(), bk.ID, domain.ActionConfirm, nil)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publicView(confirmed, true))
}

// loadByToken busca la reserva por referencia y exige el token correcto.
// Referencia desconocida y token inválido responden igual para no filtrar
// qué referencias existen.
func (h *PublicHandler) loadByToken(c *gin.Context) (*models.Booking, bool) {
	reference := c.Param("reference")
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("X-Access-Token")
	}

	bk, err := h.repo.GetBookingByReference(c.Request.Context(), reference)
	if err != nil || token == "" || bk.AccessToken != token {
		httperr.NotFound(c, "booking_not_found", "Reserva no encontrada.")
		return nil, false
	}
	return bk, true
}

func (h *PublicHandler) GetBooking(c *gin.Context) {
	bk, ok := h.loadByToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, publicView(bk, false))
}

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	bk, ok := h.loadByToken(c)
	if !ok {
		return
	}

	updated, err := h.transition.Execute(c.Request.Context(), bk.ID, domain.ActionCancel, nil)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, publicView(updated, false))
}
