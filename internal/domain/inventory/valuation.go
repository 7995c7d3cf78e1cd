package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Valuation resume el stock: unidades totales y valor (Σ cantidad × precio).
type Valuation struct {
	Products int
	Units    decimal.Decimal
	Value    decimal.Decimal
}

// Value calcula la valuación de los productos (servicio de dominio).
// Cantidades negativas heredadas de registros viejos no se corrigen: suman tal cual.
func Value(entries []entity.Entry) Valuation {
	v := Valuation{Products: len(entries), Units: decimal.Zero, Value: decimal.Zero}
	for _, e := range entries {
		v.Units = v.Units.Add(e.Product.Quantity)
		v.Value = v.Value.Add(e.Product.Quantity.Mul(e.Product.Price))
	}
	return v
}
