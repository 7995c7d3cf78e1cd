// Package cli implementa el menú interactivo de consola sobre StockUseCase.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/jhoicas/control-stock/internal/application/usecase"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// Opciones del menú principal.
const (
	OptionAdd        = "Agregar producto"
	OptionViewAll    = "Ver stock completo"
	OptionByCategory = "Ver por categoría"
	OptionSearch     = "Buscar producto"
	OptionEdit       = "Eliminar o editar producto"
	OptionAlerts     = "Avisos (vencimiento / bajo stock)"
	OptionExport     = "Exportar reporte PDF"
	OptionExit       = "Salir"
)

const cancelOption = "Cancelar"

type menuItem struct {
	label  string
	action func(ctx context.Context) error
}

// App es el bucle del menú. El inventario se carga una vez en Run y se pasa a cada operación.
type App struct {
	uc     *usecase.StockUseCase
	prompt Prompter
	out    io.Writer
	log    zerolog.Logger
	inv    *entity.Inventory
	menu   []menuItem
}

// NewApp construye la aplicación de consola.
func NewApp(uc *usecase.StockUseCase, prompt Prompter, out io.Writer, log zerolog.Logger) *App {
	a := &App{uc: uc, prompt: prompt, out: out, log: log}
	a.menu = []menuItem{
		{OptionAdd, a.addProduct},
		{OptionViewAll, a.viewAll},
		{OptionByCategory, a.viewByCategory},
		{OptionSearch, a.searchProduct},
		{OptionEdit, a.editOrDelete},
		{OptionAlerts, a.showAlerts},
		{OptionExport, a.exportReport},
	}
	return a
}

// Run muestra los avisos y atiende el menú hasta "Salir", una cancelación del menú o ctx.Done.
func (a *App) Run(ctx context.Context) error {
	a.inv = a.uc.Load()
	a.log.Info().Int("productos", a.inv.Len()).Msg("inventario cargado")

	a.dispatch(ctx, a.showAlerts)

	labels := make([]string, 0, len(a.menu)+1)
	for _, item := range a.menu {
		labels = append(labels, item.label)
	}
	labels = append(labels, OptionExit)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.println()
		choice, err := a.prompt.Select("¿Tarea a realizar?", labels)
		if errors.Is(err, domain.ErrCancelled) || choice == OptionExit {
			a.println("👋 Hasta luego")
			return nil
		}
		if err != nil {
			return fmt.Errorf("menú principal: %w", err)
		}
		found := false
		for _, item := range a.menu {
			if item.label == choice {
				a.dispatch(ctx, item.action)
				found = true
				break
			}
		}
		if !found {
			a.println("❌ Opción inválida")
		}
	}
}

// dispatch ejecuta una opción y traduce su error a un mensaje. Ningún error corta el bucle.
func (a *App) dispatch(ctx context.Context, action func(context.Context) error) {
	err := action(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmptyInventory):
		a.println("\n📦 El inventario está vacío.")
	case errors.Is(err, domain.ErrNotFound):
		a.println("❌ No se encontraron productos.")
	case errors.Is(err, domain.ErrCancelled):
		a.println("🔙 Operación cancelada.")
	case errors.Is(err, domain.ErrDuplicate):
		a.println("❌ Ya existe un producto con esos datos.")
	default:
		a.log.Error().Err(err).Msg("operación fallida")
		a.printf("❌ %v\n", err)
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
