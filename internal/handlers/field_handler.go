package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/cache"
	domain "github.com/canchalibre/field-booking/internal/domain/booking"
	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/httpresp"
	"github.com/canchalibre/field-booking/internal/images"
	"github.com/canchalibre/field-booking/internal/models"
	"github.com/canchalibre/field-booking/internal/storage"
)

type FieldHandler struct {
	db      *gorm.DB
	catalog *cache.FieldCatalogCache
	photos  *storage.PhotoStore
}

func NewFieldHandler(
	db *gorm.DB,
	catalog *cache.FieldCatalogCache,
	photos *storage.PhotoStore,
) *FieldHandler {
	return &FieldHandler{
		db:      db,
		catalog: catalog,
		photos:  photos,
	}
}

// --------- Requests ---------

type CreateFieldRequest struct {
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	SportType string `json:"sport_type" binding:"required"`

	Description string `json:"description"`

	OpeningTime  float64 `json:"opening_time"`
	ClosingTime  float64 `json:"closing_time"`
	SlotDuration float64 `json:"slot_duration"`

	BaseRate    float64 `json:"base_rate"`
	WeekendRate float64 `json:"weekend_rate"`
	NightRate   float64 `json:"night_rate"`

	SurfaceType string `json:"surface_type"`
	HasLighting bool   `json:"has_lighting"`
	HasRoof     bool   `json:"has_roof"`
	MaxPlayers  int    `json:"max_players"`
}

type UpdateFieldRequest struct {
	Name        *string `json:"name,omitempty"`
	SportType   *string `json:"sport_type,omitempty"`
	Description *string `json:"description,omitempty"`

	OpeningTime  *float64 `json:"opening_time,omitempty"`
	ClosingTime  *float64 `json:"closing_time,omitempty"`
	SlotDuration *float64 `json:"slot_duration,omitempty"`

	BaseRate    *float64 `json:"base_rate,omitempty"`
	WeekendRate *float64 `json:"weekend_rate,omitempty"`
	NightRate   *float64 `json:"night_rate,omitempty"`

	AvailableMonday    *bool `json:"available_monday,omitempty"`
	AvailableTuesday   *bool `json:"available_tuesday,omitempty"`
	AvailableWednesday *bool `json:"available_wednesday,omitempty"`
	AvailableThursday  *bool `json:"available_thursday,omitempty"`
	AvailableFriday    *bool `json:"available_friday,omitempty"`
	AvailableSaturday  *bool `json:"available_saturday,omitempty"`
	AvailableSunday    *bool `json:"available_sunday,omitempty"`

	SurfaceType *string `json:"surface_type,omitempty"`
	HasLighting *bool   `json:"has_lighting,omitempty"`
	HasRoof     *bool   `json:"has_roof,omitempty"`
	MaxPlayers  *int    `json:"max_players,omitempty"`

	Active *bool `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *FieldHandler) List(c *gin.Context) {
	sportType := strings.ToLower(strings.TrimSpace(c.Query("sport_type")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Field{})

	if sportType != "" {
		q = q.Where("sport_type = ?", sportType)
	}

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", like, like)
	}

	var fields []models.Field
	if err := q.Order("name ASC").Find(&fields).Error; err != nil {
		httperr.Internal(c, "failed_to_list_fields", "Error al listar canchas.")
		return
	}

	httpresp.List(c, fields)
}

func (h *FieldHandler) Get(c *gin.Context) {
	var field models.Field
	if err := h.db.First(&field, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "field_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_field", "Error al consultar la cancha.")
		return
	}

	c.JSON(http.StatusOK, field)
}

func (h *FieldHandler) Create(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	field := models.Field{
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         req.Name,
		SportType:    strings.ToLower(req.SportType),
		Description:  req.Description,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		SlotDuration: req.SlotDuration,
		BaseRate:     req.BaseRate,
		WeekendRate:  req.WeekendRate,
		NightRate:    req.NightRate,

		AvailableMonday:    true,
		AvailableTuesday:   true,
		AvailableWednesday: true,
		AvailableThursday:  true,
		AvailableFriday:    true,
		AvailableSaturday:  true,
		AvailableSunday:    true,

		SurfaceType: req.SurfaceType,
		HasLighting: req.HasLighting,
		HasRoof:     req.HasRoof,
		MaxPlayers:  req.MaxPlayers,
		Active:      true,
	}

	if field.ClosingTime == 0 && field.OpeningTime == 0 {
		field.OpeningTime = 6
		field.ClosingTime = 23
	}
	if field.SlotDuration == 0 {
		field.SlotDuration = 1
	}

	if err := domain.ValidateFieldConfig(&field); err != nil {
		var be httperr.BusinessError
		errors.As(err, &be)
		httperr.BadRequest(c, be.Code, "Configuración de cancha inválida.")
		return
	}

	var count int64
	h.db.Model(&models.Field{}).Where("code = ?", field.Code).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "code_already_exists", "Ya existe una cancha con ese código.")
		return
	}

	// la cuenta previa no cubre dos inserciones concurrentes: el índice
	// único decide y el error se traduce al mismo código de validación
	if err := h.db.Create(&field).Error; err != nil {
		if isDuplicateKey(err) {
			httperr.BadRequest(c, "code_already_exists", "Ya existe una cancha con ese código.")
			return
		}
		httperr.Internal(c, "failed_to_create_field", "Error al crear la cancha.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, field)
}

func (h *FieldHandler) Update(c *gin.Context) {
	var field models.Field
	if err := h.db.First(&field, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "field_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_field", "Error al consultar la cancha.")
		return
	}

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.SportType != nil {
		field.SportType = strings.ToLower(*req.SportType)
	}
	if req.Description != nil {
		field.Description = *req.Description
	}
	if req.OpeningTime != nil {
		field.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		field.ClosingTime = *req.ClosingTime
	}
	if req.SlotDuration != nil {
		field.SlotDuration = *req.SlotDuration
	}
	if req.BaseRate != nil {
		field.BaseRate = *req.BaseRate
	}
	if req.WeekendRate != nil {
		field.WeekendRate = *req.WeekendRate
	}
	if req.NightRate != nil {
		field.NightRate = *req.NightRate
	}
	if req.AvailableMonday != nil {
		field.AvailableMonday = *req.AvailableMonday
	}
	if req.AvailableTuesday != nil {
		field.AvailableTuesday = *req.AvailableTuesday
	}
	if req.AvailableWednesday != nil {
		field.AvailableWednesday = *req.AvailableWednesday
	}
	if req.AvailableThursday != nil {
		field.AvailableThursday = *req.AvailableThursday
	}
	if req.AvailableFriday != nil {
		field.AvailableFriday = *req.AvailableFriday
	}
	if req.AvailableSaturday != nil {
		field.AvailableSaturday = *req.AvailableSaturday
	}
	if req.AvailableSunday != nil {
		field.AvailableSunday = *req.AvailableSunday
	}
	if req.SurfaceType != nil {
		field.SurfaceType = *req.SurfaceType
	}
	if req.HasLighting != nil {
		field.HasLighting = *req.HasLighting
	}
	if req.HasRoof != nil {
		field.HasRoof = *req.HasRoof
	}
	if req.MaxPlayers != nil {
		field.MaxPlayers = *req.MaxPlayers
	}
	if req.Active != nil {
		field.Active = *req.Active
	}

	if err := domain.ValidateFieldConfig(&field); err != nil {
		var be httperr.BusinessError
		errors.As(err, &be)
		httperr.BadRequest(c, be.Code, "Configuración de cancha inválida.")
		return
	}

	if err := h.db.Save(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_update_field", "Error al actualizar la cancha.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, field)
}

// --------- Photo ---------

const maxPhotoBytes = 8 << 20

func (h *FieldHandler) UploadPhoto(c *gin.Context) {
	var field models.Field
	if err := h.db.First(&field, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "field_not_found", "Cancha no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_field", "Error al consultar la cancha.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Falta el archivo de foto.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil || len(data) > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "La foto excede el tamaño máximo.")
		return
	}

	encoded, err := images.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen no se pudo procesar.")
		return
	}

	key := fmt.Sprintf("fields/%d/%d.webp", field.ID, time.Now().Unix())
	url, err := h.photos.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "Error al subir la foto.")
		return
	}

	field.PhotoURL = url
	if err := h.db.Save(&field).Error; err != nil {
		httperr.Internal(c, "failed_to_update_field", "Error al guardar la foto.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
