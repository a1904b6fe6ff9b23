package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/httperr"
	"github.com/canchalibre/field-booking/internal/middleware"
)

// writeBusinessError traduce los errores de dominio a una respuesta HTTP.
// Los códigos *_not_found salen como 404, el solape de reservas como 409
// con la referencia en conflicto, y el resto como 400.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	switch be.Code {
	case "field_not_found":
		httperr.NotFound(c, be.Code, "Cancha no encontrada.")
	case "booking_not_found":
		httperr.NotFound(c, be.Code, "Reserva no encontrada.")
	case "conflicting_booking":
		httperr.Conflict(c, be.Code, "El horario ya está ocupado.", be.Ref)
	default:
		httperr.BadRequest(c, be.Code, "La reserva no supera las validaciones.")
	}
}

// isDuplicateKey detecta la violación de un índice único. El fallback
// por texto cubre conexiones donde gorm no traduce el error del driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value")
}

func currentUserID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
