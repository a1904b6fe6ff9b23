package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type EventLogsHandler struct {
	db *gorm.DB
	tz string
}

func NewEventLogsHandler(db *gorm.DB, tz string) *EventLogsHandler {
	return &EventLogsHandler{db: db, tz: tz}
}

func (h *EventLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	bookingStr := c.Query("booking_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.BookingEvent{})

	// --------------------------------------------------
	// Filtros opcionales
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if bookingStr != "" {
		if bookingID, err := strconv.Atoi(bookingStr); err == nil {
			q = q.Where("booking_id = ?", bookingID)
		}
	}

	loc := timezone.Location(h.tz)

	if fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "events_count_failed", "Error al contar eventos.")
		return
	}

	// --------------------------------------------------
	// Listado
	// --------------------------------------------------

	var logs []models.BookingEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "events_list_failed", "Error al listar eventos.")
		return
	}

	c.JSON(200, gin.H{
		"page":   page,
		"limit":  limit,
		"total":  total,
		"events": logs,
	})
}
