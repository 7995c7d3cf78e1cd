package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

func sampleInventory() *entity.Inventory {
	inv := entity.NewInventory()
	for _, p := range []*entity.Product{
		{Name: "Arroz", Brand: "Gallo", Presentation: "1kg", Category: entity.CategoryFood},
		{Name: "Lavandina", Brand: "Ayudín", Presentation: "2L", Category: entity.CategoryCleaning},
		{Name: "Arroz integral", Brand: "Gallo", Presentation: "500g", Category: entity.CategoryFood},
		{Name: "Leche", Brand: "La Serenísima", Presentation: "1L", Category: entity.CategoryBeverages},
	} {
		inv.Put(p.Key(), p)
	}
	return inv
}

func TestListAll_OrdenDeInsercion(t *testing.T) {
	got := inventory.ListAll(sampleInventory())
	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Product.Name)
	}
	assert.Equal(t, []string{"Arroz", "Lavandina", "Arroz integral", "Leche"}, names)
}

func TestFilterByCategory_SinDistinguirMayusculas(t *testing.T) {
	inv := sampleInventory()

	got := inventory.FilterByCategory(inv, "alimentos")
	assert.Len(t, got, 2)
	assert.Equal(t, "Arroz", got[0].Product.Name)
	assert.Equal(t, "Arroz integral", got[1].Product.Name)

	assert.Len(t, inventory.FilterByCategory(inv, "BEBIDAS Y LÁCTEOS"), 1)
}

func TestFilterByCategory_VacioYSinCoincidencias(t *testing.T) {
	empty := inventory.FilterByCategory(entity.NewInventory(), "Alimentos")
	none := inventory.FilterByCategory(sampleInventory(), "Otros")

	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFilterByName(t *testing.T) {
	inv := sampleInventory()

	assert.Equal(t, 0, inventory.FilterByName(inv, "fideos").Len())

	one := inventory.FilterByName(inv, "LECH")
	assert.Equal(t, []string{"Leche(La Serenísima) - 1L"}, one.Keys())

	many := inventory.FilterByName(inv, "arroz")
	assert.Equal(t, []string{"Arroz(Gallo) - 1kg", "Arroz integral(Gallo) - 500g"}, many.Keys())
}
