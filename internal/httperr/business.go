package httperr

import "errors"

type BusinessError struct {
	Code string

	// Referencia de la entidad en conflicto, cuando aplica
	// (ej: la reserva que ya ocupa el horario).
	Ref string
}

func (e BusinessError) Error() string {
	if e.Ref != "" {
		return e.Code + ": " + e.Ref
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessRef(code, ref string) error {
	return BusinessError{Code: code, Ref: ref}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessRef(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Ref
	}
	return ""
}
