package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

// hints asocia cada error de validación con el mensaje que se muestra antes de volver a preguntar.
type hints map[error]string

func (h hints) message(err error) string {
	for target, msg := range h {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "❌ " + err.Error()
}

// askUntilValid pregunta hasta que check acepte la respuesta. Sólo los errores de validación
// se vuelven a preguntar; la cancelación y cualquier otro error se devuelven.
func (a *App) askUntilValid(message string, h hints, check func(raw string) error) (string, error) {
	for {
		raw, err := a.prompt.Input(message)
		if err != nil {
			return "", err
		}
		err = check(raw)
		if err == nil {
			return raw, nil
		}
		if !domain.IsValidation(err) {
			return "", err
		}
		a.println(h.message(err))
	}
}

// ── Alta ──────────────────────────────────────────────────────────────────────

func (a *App) addProduct(_ context.Context) error {
	draft, err := a.askDraft()
	if errors.Is(err, domain.ErrCancelled) {
		a.println("❌ No se pudo agregar el producto.")
		return nil
	}
	if err != nil {
		return err
	}

	res, err := a.uc.AddProduct(a.inv, *draft)
	if err != nil {
		return err
	}
	if res.Created {
		a.printf("✅ Producto nuevo agregado: %s\n", res.Key)
	} else {
		a.printf("✅ Producto existente actualizado: %s\n", res.Key)
	}
	return nil
}

// askDraft recolecta el formulario de alta validando cada campo por separado.
func (a *App) askDraft() (*dto.ProductDraft, error) {
	var d dto.ProductDraft
	var err error

	_, err = a.askUntilValid("Nombre del producto:",
		hints{domain.ErrInvalidInput: "❌ El nombre no puede estar vacío."},
		func(raw string) (e error) {
			d.Name, e = inventory.ParseName(raw)
			return
		})
	if err != nil {
		return nil, err
	}
	if d.Brand, err = a.prompt.Input("Marca del producto:"); err != nil {
		return nil, err
	}
	if d.Presentation, err = a.prompt.Input("Presentación (ej: 500ml, 1L, pack x 6):"); err != nil {
		return nil, err
	}

	_, err = a.askUntilValid("Cantidad:",
		hints{domain.ErrInvalidNumber: "❌ Cantidad inválida. Ingresá un número entero."},
		func(raw string) (e error) {
			d.Quantity, e = inventory.ParseQuantity(raw)
			return
		})
	if err != nil {
		return nil, err
	}

	_, err = a.askUntilValid("Precio:",
		hints{domain.ErrInvalidNumber: "❌ Precio inválido. Ingresá un número con punto. Ej: 38.7."},
		func(raw string) (e error) {
			d.Price, e = inventory.ParsePrice(raw)
			return
		})
	if err != nil {
		return nil, err
	}

	_, err = a.askUntilValid("Cantidad mínima (stock mínimo):",
		hints{
			domain.ErrInvalidNumber:       "❌ Valor inválido. Ingresá un número entero.",
			domain.ErrConstraintViolation: "❌ El stock mínimo no puede ser mayor que la cantidad ingresada.",
		},
		func(raw string) (e error) {
			d.MinStock, e = inventory.ParseMinimumStock(raw, d.Quantity)
			return
		})
	if err != nil {
		return nil, err
	}

	var intake time.Time
	dateHints := hints{
		domain.ErrInvalidDate:        "❌ Fecha inválida. Ingresá en formato DDMMAAAA.",
		domain.ErrFutureDate:         "❌ La fecha de ingreso no puede ser futura.",
		domain.ErrExpiryBeforeIntake: "❌ La fecha de vencimiento no puede ser anterior al ingreso.",
	}
	raw, err := a.askUntilValid("Fecha de ingreso (DDMMAAAA):", dateHints,
		func(raw string) (e error) {
			intake, e = inventory.ParseIntakeDate(inventory.NormalizeDate(raw), a.uc.Today())
			return
		})
	if err != nil {
		return nil, err
	}
	d.IntakeDate = inventory.NormalizeDate(raw)

	raw, err = a.askUntilValid("Fecha de vencimiento (DDMMAAAA):", dateHints,
		func(raw string) error {
			_, e := inventory.ParseExpiryDate(inventory.NormalizeDate(raw), intake)
			return e
		})
	if err != nil {
		return nil, err
	}
	d.Expiry = inventory.NormalizeDate(raw)

	if d.Category, err = a.selectCategory(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ── Edición y baja ────────────────────────────────────────────────────────────

const (
	actionDelete = "Eliminar un producto"
	actionEdit   = "Editar un producto"
)

func (a *App) editOrDelete(_ context.Context) error {
	choice, err := a.prompt.Select("¿Qué querés hacer?", []string{actionDelete, actionEdit, cancelOption})
	if err != nil && !errors.Is(err, domain.ErrCancelled) {
		return err
	}
	switch choice {
	case actionDelete:
		return a.deleteProduct()
	case actionEdit:
		return a.editProduct()
	}
	a.println("🔙 Operación cancelada.")
	return nil
}

func (a *App) deleteProduct() error {
	key, err := a.selectProduct("eliminar")
	if err != nil {
		return err
	}
	ok, err := a.prompt.Confirm(fmt.Sprintf("¿Estás segura de que querés eliminar '%s'?", key))
	if errors.Is(err, domain.ErrCancelled) || (err == nil && !ok) {
		a.println("❎ Eliminación cancelada.")
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := a.uc.DeleteProduct(a.inv, key); err != nil {
		return err
	}
	a.printf("✅ Producto eliminado: %s\n", key)
	return nil
}

var editPrompts = map[dto.EditField]string{
	dto.EditBrand:        "Nueva marca:",
	dto.EditPresentation: "Nueva presentación:",
	dto.EditQuantity:     "Nueva cantidad:",
	dto.EditPrice:        "Nuevo precio:",
	dto.EditMinStock:     "Nuevo stock mínimo:",
	dto.EditIntakeDate:   "Fecha de ingreso (DDMMAAAA):",
	dto.EditExpiry:       "Fecha de vencimiento (DDMMAAAA):",
}

func (a *App) editProduct() error {
	key, err := a.selectProduct("editar")
	if errors.Is(err, domain.ErrCancelled) {
		a.println("🔙 Edición cancelada.")
		return nil
	}
	if err != nil {
		return err
	}

	options := make([]string, 0, len(dto.EditFields)+1)
	for _, f := range dto.EditFields {
		options = append(options, string(f))
	}
	choice, err := a.prompt.Select("¿Qué querés editar?", append(options, cancelOption))
	if errors.Is(err, domain.ErrCancelled) || choice == cancelOption {
		a.println("🔙 Edición cancelada.")
		return nil
	}
	if err != nil {
		return err
	}
	field := dto.EditField(choice)

	var res *dto.EditResult
	if field == dto.EditCategory {
		category, err := a.selectCategory()
		if err == nil {
			res, err = a.uc.EditProduct(a.inv, key, dto.EditRequest{Field: field, Value: category})
		}
		if err != nil {
			return a.editAborted(err)
		}
	} else {
		_, err = a.askUntilValid(editPrompts[field], a.editHints(key, field), func(raw string) (e error) {
			res, e = a.uc.EditProduct(a.inv, key, dto.EditRequest{Field: field, Value: raw})
			return
		})
		if err != nil {
			return a.editAborted(err)
		}
	}

	if res.Key != res.OldKey {
		a.printf("🔑 Nueva clave: %s\n", res.Key)
	}
	a.println("✅ Producto actualizado correctamente.")
	return nil
}

func (a *App) editAborted(err error) error {
	if errors.Is(err, domain.ErrCancelled) {
		a.println("🔙 Edición cancelada.")
		return nil
	}
	return err
}

func (a *App) editHints(key string, field dto.EditField) hints {
	switch field {
	case dto.EditQuantity:
		return hints{domain.ErrInvalidNumber: "❌ Cantidad inválida. Ingresá un número entero."}
	case dto.EditPrice:
		return hints{domain.ErrInvalidNumber: "❌ Precio inválido. Ingresá un número con punto."}
	case dto.EditMinStock:
		qty := decimal.Zero
		if p, ok := a.inv.Get(key); ok {
			qty = p.Quantity
		}
		return hints{
			domain.ErrInvalidNumber: "❌ Valor inválido. Ingresá un número entero.",
			domain.ErrConstraintViolation: fmt.Sprintf(
				"❌ El stock mínimo no puede ser mayor que la cantidad actual (%s unidades).", qty),
		}
	case dto.EditIntakeDate, dto.EditExpiry:
		return hints{
			domain.ErrInvalidDate:        "❌ Fecha inválida.",
			domain.ErrFutureDate:         "❌ No puede ser futura.",
			domain.ErrExpiryBeforeIntake: "❌ No puede vencer antes del ingreso.",
		}
	}
	return hints{}
}
