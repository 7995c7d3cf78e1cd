package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// MergeResult describe qué hizo Upsert sobre el inventario.
type MergeResult struct {
	Key           string
	Created       bool
	PriceChanged  bool
	PreviousPrice decimal.Decimal
	Product       *entity.Product // registro resultante dentro del inventario
}

// Upsert inserta el producto si la clave no existe; si existe, suma la cantidad entrante
// y reemplaza el precio cuando es distinto. Stock mínimo, fechas, categoría, marca y
// presentación del registro existente no se modifican. Nunca falla: una cantidad cero
// o negativa se acepta tal cual.
func Upsert(inv *entity.Inventory, key string, incoming *entity.Product) MergeResult {
	existing, ok := inv.Get(key)
	if !ok {
		inv.Put(key, incoming)
		return MergeResult{Key: key, Created: true, Product: incoming}
	}

	res := MergeResult{Key: key, Product: existing}
	existing.Quantity = existing.Quantity.Add(incoming.Quantity)
	if !incoming.Price.Equal(existing.Price) {
		res.PriceChanged = true
		res.PreviousPrice = existing.Price
		existing.Price = incoming.Price
	}
	return res
}
