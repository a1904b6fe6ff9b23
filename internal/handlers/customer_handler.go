package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/dto"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/httpresp"
	"github.com/canchalibre/field-booking/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Customer{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := q.Order("name ASC").Limit(100).Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Error al listar clientes.")
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Error al consultar el cliente.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Bookings devuelve el historial de reservas de un cliente, más reciente
// primero.
func (h *CustomerHandler) Bookings(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Cliente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Error al consultar el cliente.")
		return
	}

	var rows []dto.BookingListDTO
	err := h.db.Model(&models.Booking{}).
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Joins("JOIN fields ON fields.id = bookings.field_id").
		Where("bookings.customer_id = ?", customer.ID).
		Select(`bookings.id, bookings.reference, bookings.date,
			bookings.start_time, bookings.end_time, bookings.state,
			bookings.total_price,
			customers.name AS customer_name,
			fields.name AS field_name, fields.code AS field_code`).
		Order("bookings.date DESC, bookings.start_time DESC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar reservas.")
		return
	}

	httpresp.List(c, rows)
}
