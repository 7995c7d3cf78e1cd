package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

func newProduct(name string, qty int64, price string) *entity.Product {
	return &entity.Product{
		Name:         name,
		Brand:        "La Serenísima",
		Presentation: "1L",
		Quantity:     decimal.NewFromInt(qty),
		Price:        decimal.RequireFromString(price),
		MinStock:     entity.Int64Ptr(2),
		IntakeDate:   entity.StringPtr("01/07/2025"),
		Expiry:       entity.StringPtr("30/07/2025"),
		Category:     entity.CategoryBeverages,
	}
}

func TestBuildKey_Determinista(t *testing.T) {
	a := entity.BuildKey("Leche", "La Serenísima", "1L")
	b := entity.BuildKey("Leche", "La Serenísima", "1L")
	assert.Equal(t, "Leche(La Serenísima) - 1L", a)
	assert.Equal(t, a, b)

	p := newProduct("Leche", 1, "10")
	q := newProduct("Leche", 99, "500")
	q.Category = entity.CategoryOther
	assert.Equal(t, p.Key(), q.Key(), "la clave sólo depende de nombre, marca y presentación")

	assert.NotEqual(t, a, entity.BuildKey("leche", "La Serenísima", "1L"), "distingue mayúsculas")
	assert.NotEqual(t, a, entity.BuildKey("Leche ", "La Serenísima", "1L"), "distingue espacios")
}

func TestUpsert_InsertaNuevo(t *testing.T) {
	inv := entity.NewInventory()
	p := newProduct("Leche", 5, "1200")

	res := inventory.Upsert(inv, p.Key(), p)

	assert.True(t, res.Created)
	assert.False(t, res.PriceChanged)
	got, ok := inv.Get(p.Key())
	require.True(t, ok)
	assert.Same(t, p, got)
}

func TestUpsert_SumaCantidadYActualizaPrecio(t *testing.T) {
	inv := entity.NewInventory()
	first := newProduct("Leche", 3, "1200")
	key := first.Key()
	inventory.Upsert(inv, key, first)

	second := newProduct("Leche", 4, "1350.5")
	second.MinStock = entity.Int64Ptr(9)
	second.Expiry = entity.StringPtr("01/01/2030")
	second.Category = entity.CategoryOther
	res := inventory.Upsert(inv, key, second)

	assert.False(t, res.Created)
	assert.True(t, res.PriceChanged)
	assert.True(t, res.PreviousPrice.Equal(decimal.NewFromInt(1200)))

	got, _ := inv.Get(key)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(7)), "q1 + q2")
	assert.True(t, got.Price.Equal(decimal.RequireFromString("1350.5")))
	assert.Equal(t, int64(2), *got.MinStock, "stock mínimo intacto")
	assert.Equal(t, "30/07/2025", *got.Expiry, "vencimiento intacto")
	assert.Equal(t, entity.CategoryBeverages, got.Category, "categoría intacta")
	assert.Equal(t, 1, inv.Len())
}

func TestUpsert_MismoPrecioNoCambia(t *testing.T) {
	inv := entity.NewInventory()
	key := entity.BuildKey("Leche", "La Serenísima", "1L")
	inventory.Upsert(inv, key, newProduct("Leche", 3, "1200"))

	res := inventory.Upsert(inv, key, newProduct("Leche", 2, "1200.00"))
	assert.False(t, res.PriceChanged, "1200 y 1200.00 son el mismo precio")
}

func TestUpsert_AceptaCantidadCeroONegativa(t *testing.T) {
	inv := entity.NewInventory()
	key := entity.BuildKey("Leche", "La Serenísima", "1L")
	inventory.Upsert(inv, key, newProduct("Leche", 3, "1200"))

	neg := newProduct("Leche", 0, "1200")
	neg.Quantity = decimal.NewFromInt(-5)
	inventory.Upsert(inv, key, neg)

	got, _ := inv.Get(key)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(-2)))
}
