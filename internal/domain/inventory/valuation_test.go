package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

func TestValue(t *testing.T) {
	inv := entity.NewInventory()
	a := &entity.Product{Name: "A", Quantity: decimal.NewFromInt(3), Price: decimal.RequireFromString("10.50")}
	b := &entity.Product{Name: "B", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(100)}
	inv.Put(a.Key(), a)
	inv.Put(b.Key(), b)

	v := inventory.Value(inventory.ListAll(inv))

	assert.Equal(t, 2, v.Products)
	assert.True(t, v.Units.Equal(decimal.NewFromInt(5)))
	assert.True(t, v.Value.Equal(decimal.RequireFromString("231.5")), "3×10.50 + 2×100")
}

func TestValue_Vacio(t *testing.T) {
	v := inventory.Value(nil)
	assert.Zero(t, v.Products)
	assert.True(t, v.Value.IsZero())
}
