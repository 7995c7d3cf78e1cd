package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain"
)

// DateLayout formato de fecha persistido y mostrado (DD/MM/AAAA).
const DateLayout = "02/01/2006"

// parseLayout acepta día y mes con uno o dos dígitos (1/7/2025 y 01/07/2025).
const parseLayout = "2/1/2006"

// ParseName valida el nombre del producto: no puede quedar en blanco. Se devuelve tal cual,
// porque forma parte de la clave de identidad.
func ParseName(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	return raw, nil
}

// ParseQuantity valida una cantidad: entero no negativo.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cantidad %q: %w", raw, domain.ErrInvalidNumber)
	}
	if n < 0 {
		return decimal.Zero, fmt.Errorf("cantidad %q negativa: %w", raw, domain.ErrInvalidNumber)
	}
	return decimal.NewFromInt(n), nil
}

// ParsePrice valida un precio decimal con punto (ej. 38.7), no negativo.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.Contains(s, ",") {
		return decimal.Zero, fmt.Errorf("precio %q: %w", raw, domain.ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio %q: %w", raw, domain.ErrInvalidNumber)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("precio %q negativo: %w", raw, domain.ErrInvalidNumber)
	}
	return d, nil
}

// ParseMinimumStock valida el stock mínimo: entero no negativo y no mayor que la cantidad actual.
// Formato inválido → ErrInvalidNumber; mayor que la cantidad → ErrConstraintViolation.
func ParseMinimumStock(raw string, currentQuantity decimal.Decimal) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stock mínimo %q: %w", raw, domain.ErrInvalidNumber)
	}
	if n < 0 {
		return 0, fmt.Errorf("stock mínimo %q negativo: %w", raw, domain.ErrInvalidNumber)
	}
	if decimal.NewFromInt(n).GreaterThan(currentQuantity) {
		return 0, fmt.Errorf("stock mínimo %d > cantidad %s: %w", n, currentQuantity, domain.ErrConstraintViolation)
	}
	return n, nil
}

// NormalizeDate convierte "DDMMAAAA" (exactamente 8 dígitos) en "DD/MM/AAAA".
// Cualquier otra entrada se devuelve sin cambios para que falle en el validador siguiente.
func NormalizeDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return raw
		}
	}
	return raw[:2] + "/" + raw[2:4] + "/" + raw[4:]
}

// ParseDate interpreta una fecha D/M/AAAA o DD/MM/AAAA (día calendario, hora local).
func ParseDate(normalized string) (time.Time, error) {
	t, err := time.ParseInLocation(parseLayout, strings.TrimSpace(normalized), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", normalized, domain.ErrInvalidDate)
	}
	return t, nil
}

// FormatDate devuelve la fecha como DD/MM/AAAA.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseIntakeDate valida la fecha de ingreso: formato correcto y no posterior a hoy.
func ParseIntakeDate(normalized string, today time.Time) (time.Time, error) {
	t, err := ParseDate(normalized)
	if err != nil {
		return time.Time{}, err
	}
	if t.After(StartOfDay(today)) {
		return time.Time{}, fmt.Errorf("fecha de ingreso %s: %w", normalized, domain.ErrFutureDate)
	}
	return t, nil
}

// ParseExpiryDate valida la fecha de vencimiento: formato correcto y no anterior al ingreso.
// Un ingreso cero (registro sin fecha de ingreso) no impone cota inferior.
func ParseExpiryDate(normalized string, intake time.Time) (time.Time, error) {
	t, err := ParseDate(normalized)
	if err != nil {
		return time.Time{}, err
	}
	if !intake.IsZero() && t.Before(StartOfDay(intake)) {
		return time.Time{}, fmt.Errorf("vencimiento %s anterior al ingreso %s: %w",
			normalized, FormatDate(intake), domain.ErrExpiryBeforeIntake)
	}
	return t, nil
}

// StartOfDay trunca a la medianoche local del mismo día calendario.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
