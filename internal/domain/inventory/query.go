package inventory

import (
	"strings"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// ListAll devuelve todos los productos en orden de inserción.
func ListAll(inv *entity.Inventory) []entity.Entry {
	return inv.Entries()
}

// FilterByCategory devuelve los productos cuya categoría coincide exactamente, sin distinguir
// mayúsculas. Inventario vacío y "sin coincidencias" devuelven ambos un slice vacío.
func FilterByCategory(inv *entity.Inventory, category string) []entity.Entry {
	want := entity.Fold(category)
	out := []entity.Entry{}
	for _, e := range inv.Entries() {
		if entity.Fold(string(e.Product.Category)) == want {
			out = append(out, e)
		}
	}
	return out
}

// FilterByName devuelve, en un inventario nuevo, los productos cuyo nombre contiene el término
// (sin distinguir mayúsculas). Los punteros son los del inventario original.
func FilterByName(inv *entity.Inventory, term string) *entity.Inventory {
	needle := entity.Fold(term)
	out := entity.NewInventory()
	for _, e := range inv.Entries() {
		if strings.Contains(entity.Fold(e.Product.Name), needle) {
			out.Put(e.Key, e.Product)
		}
	}
	return out
}
