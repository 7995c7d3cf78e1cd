package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("producto no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("el producto ya existe")
	ErrEmptyInventory      = errors.New("el inventario está vacío")
	ErrCancelled           = errors.New("operación cancelada")
	ErrInvalidNumber       = errors.New("número inválido")
	ErrConstraintViolation = errors.New("el stock mínimo no puede ser mayor que la cantidad")
	ErrInvalidDate         = errors.New("fecha inválida")
	ErrFutureDate          = errors.New("la fecha de ingreso no puede ser futura")
	ErrExpiryBeforeIntake  = errors.New("la fecha de vencimiento no puede ser anterior al ingreso")
)

// IsValidation indica si err es un error de validación de entrada, recuperable re-preguntando.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrInvalidNumber, ErrConstraintViolation,
		ErrInvalidDate, ErrFutureDate, ErrExpiryBeforeIntake,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
