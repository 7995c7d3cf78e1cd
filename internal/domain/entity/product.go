package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario tal como se persiste en el documento JSON.
// MinStock, IntakeDate y Expiry son punteros porque los registros antiguos pueden no tenerlos:
// la visualización tolera su ausencia, la edición exige los campos que toca.
type Product struct {
	Name         string          `json:"nombre"`
	Brand        string          `json:"marca"`
	Presentation string          `json:"presentacion"` // 500ml, 1L, pack x 6...
	Quantity     decimal.Decimal `json:"cantidad"`
	Price        decimal.Decimal `json:"precio"`
	MinStock     *int64          `json:"stock_minimo,omitempty"`
	Expiry       *string         `json:"vencimiento,omitempty"`   // DD/MM/AAAA
	IntakeDate   *string         `json:"fecha_ingreso,omitempty"` // DD/MM/AAAA
	Category     Category        `json:"categoria,omitempty"`
}

// BuildKey arma la clave de identidad "{nombre}({marca}) - {presentación}".
// No normaliza mayúsculas ni espacios: dos textos distintos son dos productos distintos.
func BuildKey(name, brand, presentation string) string {
	return fmt.Sprintf("%s(%s) - %s", name, brand, presentation)
}

// Key devuelve la clave de identidad derivada de los campos actuales.
func (p *Product) Key() string {
	return BuildKey(p.Name, p.Brand, p.Presentation)
}

// Clone devuelve una copia independiente (los punteros opcionales también se copian).
func (p *Product) Clone() *Product {
	c := *p
	if p.MinStock != nil {
		v := *p.MinStock
		c.MinStock = &v
	}
	if p.Expiry != nil {
		v := *p.Expiry
		c.Expiry = &v
	}
	if p.IntakeDate != nil {
		v := *p.IntakeDate
		c.IntakeDate = &v
	}
	return &c
}

// ExpiryText, IntakeText y MinStockText devuelven el valor o un marcador para registros incompletos.
func (p *Product) ExpiryText() string {
	return textOr(p.Expiry, "N/D")
}

func (p *Product) IntakeText() string {
	return textOr(p.IntakeDate, "N/D")
}

func (p *Product) MinStockText() string {
	if p.MinStock == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *p.MinStock)
}

// CategoryText devuelve la categoría o "No especificada".
func (p *Product) CategoryText() string {
	if p.Category == "" {
		return "No especificada"
	}
	return string(p.Category)
}

func textOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// StringPtr e Int64Ptr simplifican la construcción de campos opcionales.
func StringPtr(s string) *string { return &s }
func Int64Ptr(n int64) *int64    { return &n }
