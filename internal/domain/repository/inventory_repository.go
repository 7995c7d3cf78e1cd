package repository

import "github.com/jhoicas/control-stock/internal/domain/entity"

// InventoryRepository define el puerto de persistencia del documento de inventario (DIP).
// Load nunca falla: un documento ausente o corrupto equivale a un inventario vacío.
type InventoryRepository interface {
	Load() *entity.Inventory
	Save(inv *entity.Inventory) error
}

// EventLog define el puerto del historial de cambios (una línea por evento).
type EventLog interface {
	Record(message string) error
}
