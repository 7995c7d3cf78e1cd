package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// ProductDraft entrada del formulario de alta, con los campos ya validados uno a uno.
// Fechas en DD/MM/AAAA; Category es la etiqueta elegida en el menú.
type ProductDraft struct {
	Brand        string
	Presentation string
	Name         string          `validate:"required"`
	Quantity     decimal.Decimal `validate:"gte=0"`
	Price        decimal.Decimal `validate:"gte=0"`
	MinStock     int64           `validate:"gte=0"`
	IntakeDate   string          `validate:"required"`
	Expiry       string          `validate:"required"`
	Category     string          `validate:"required,categoria"`
}

// Key clave de identidad que tendrá el producto.
func (d ProductDraft) Key() string {
	return entity.BuildKey(d.Name, d.Brand, d.Presentation)
}

// AddProductResult salida del alta: producto nuevo o existente actualizado.
type AddProductResult struct {
	Key           string
	Created       bool
	PriceChanged  bool
	PreviousPrice decimal.Decimal
	Product       *entity.Product
}

// EditField campo editable de un producto; el valor es la etiqueta que ve el usuario.
type EditField string

const (
	EditBrand        EditField = "Marca"
	EditPresentation EditField = "Presentación"
	EditQuantity     EditField = "Cantidad"
	EditPrice        EditField = "Precio"
	EditMinStock     EditField = "Stock mínimo"
	EditIntakeDate   EditField = "Fecha de ingreso"
	EditExpiry       EditField = "Fecha de vencimiento"
	EditCategory     EditField = "Categoría"
)

// EditFields en el orden en que se ofrecen.
var EditFields = []EditField{
	EditBrand, EditPresentation, EditQuantity, EditPrice,
	EditMinStock, EditIntakeDate, EditExpiry, EditCategory,
}

// EditRequest edición de un único campo con el texto ingresado.
type EditRequest struct {
	Field EditField
	Value string
}

// EditResult salida de una edición. Key cambia si se editó marca o presentación.
type EditResult struct {
	Key     string
	OldKey  string
	Field   EditField
	Product *entity.Product
}
