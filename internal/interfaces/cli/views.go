package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

func (a *App) viewAll(_ context.Context) error {
	if a.inv.IsEmpty() {
		return domain.ErrEmptyInventory
	}
	a.println("\n📋 LISTADO COMPLETO DE PRODUCTOS EN STOCK:")
	a.println()
	for i, e := range inventory.ListAll(a.inv) {
		a.printf("%d. %s\n", i+1, e.Key)
		a.printf("   Categoría: %s\n", e.Product.CategoryText())
		a.printEntryBody(e.Product)
	}
	return nil
}

func (a *App) viewByCategory(_ context.Context) error {
	if a.inv.IsEmpty() {
		return domain.ErrEmptyInventory
	}
	category, err := a.selectCategory()
	if err != nil {
		return err
	}
	matches := inventory.FilterByCategory(a.inv, category)
	if len(matches) == 0 {
		a.printf("\n📦 No hay productos en la categoría '%s'.\n", category)
		return nil
	}
	a.printf("\n📋 PRODUCTOS EN CATEGORÍA: %s\n\n", strings.ToUpper(category))
	for i, e := range matches {
		a.printf("%d. %s\n", i+1, e.Key)
		a.printEntryBody(e.Product)
	}
	return nil
}

func (a *App) printEntryBody(p *entity.Product) {
	a.printf("   Ingreso: %s | Vencimiento: %s\n", p.IntakeText(), p.ExpiryText())
	a.printf("   Stock: %s unidades (mínimo: %s)\n", p.Quantity, p.MinStockText())
	a.printf("   Precio: $%s\n\n", p.Price)
}

func (a *App) searchProduct(_ context.Context) error {
	key, err := a.selectProduct("ver")
	if errors.Is(err, domain.ErrCancelled) {
		a.println("🔙 Búsqueda cancelada.")
		return nil
	}
	if err != nil {
		return err
	}
	p, _ := a.inv.Get(key)
	a.printf("\n🔍 Resultado para '%s':\n", key)
	a.printf("   Nombre: %s\n", p.Name)
	a.printf("   Marca: %s\n", p.Brand)
	a.printf("   Presentación: %s\n", p.Presentation)
	a.printf("   Categoría: %s\n", p.CategoryText())
	a.printf("   Fecha de ingreso: %s\n", p.IntakeText())
	a.printf("   Vencimiento: %s\n", p.ExpiryText())
	a.printf("   Cantidad: %s unidades\n", p.Quantity)
	a.printf("   Stock mínimo: %s\n", p.MinStockText())
	a.printf("   Precio: $%s\n", p.Price)
	return nil
}

func (a *App) showAlerts(_ context.Context) error {
	if a.inv.IsEmpty() {
		return domain.ErrEmptyInventory
	}
	report := a.uc.Alerts(a.inv)

	if len(report.Expired) > 0 {
		a.println("\n🔴 PRODUCTOS VENCIDOS:")
		for _, e := range report.Expired {
			a.printf("- %s (%s) venció el %s\n", e.Product.Name, e.Product.Brand, e.Product.ExpiryText())
		}
	}
	if len(report.ExpiringSoon) > 0 {
		a.printf("\n🟠 PRODUCTOS POR VENCER (próximos %d días):\n", a.uc.WarningDays())
		for _, e := range report.ExpiringSoon {
			a.printf("- %s (%s) vence el %s\n", e.Product.Name, e.Product.Brand, e.Product.ExpiryText())
		}
	}
	if len(report.LowStock) > 0 {
		a.println("\n⚠️ PRODUCTOS CON STOCK BAJO:")
		for _, e := range report.LowStock {
			a.printf("- %s (%s): %s unidades (mínimo: %s)\n",
				e.Product.Name, e.Product.Brand, e.Product.Quantity, e.Product.MinStockText())
		}
	}
	if report.AllClear() {
		a.println("\n✅ No hay productos vencidos, por vencer ni con bajo stock.")
	}
	return nil
}

func (a *App) exportReport(ctx context.Context) error {
	path, err := a.uc.ExportReport(ctx, a.inv)
	if err != nil {
		return err
	}
	a.printf("📄 Reporte generado: %s\n", path)
	return nil
}

// selectProduct busca por nombre parcial: sin coincidencias → ErrNotFound, una → se elige sola,
// varias → menú con opción de cancelar.
func (a *App) selectProduct(action string) (string, error) {
	if a.inv.IsEmpty() {
		return "", domain.ErrEmptyInventory
	}
	term, err := a.prompt.Input("🔍 ¿Qué producto querés " + action + "? (nombre)")
	if err != nil {
		return "", err
	}
	matches := inventory.FilterByName(a.inv, term)
	switch matches.Len() {
	case 0:
		return "", domain.ErrNotFound
	case 1:
		return matches.Keys()[0], nil
	}
	choice, err := a.prompt.Select("Varios productos coinciden. Elegí uno para "+action+":",
		append(matches.Keys(), cancelOption))
	if err != nil {
		return "", err
	}
	if choice == cancelOption {
		return "", domain.ErrCancelled
	}
	return choice, nil
}

func (a *App) selectCategory() (string, error) {
	return a.prompt.Select("Seleccioná la categoría del producto:", entity.CategoryLabels())
}
