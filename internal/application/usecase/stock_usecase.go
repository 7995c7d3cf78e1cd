package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/application/dto"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
	"github.com/jhoicas/control-stock/internal/domain/repository"
)

// StockUseCase casos de uso sobre el inventario. El inventario no vive aquí: cada método lo recibe
// explícitamente, lo muta y lo persiste completo después de cada cambio.
type StockUseCase struct {
	repo        repository.InventoryRepository
	events      repository.EventLog
	reports     ReportGenerator
	reportsDir  string
	now         func() time.Time
	warningDays int
	log         zerolog.Logger

	// pending eventos de cambios cuyo guardado falló; se escriben con el próximo guardado exitoso.
	pending []string
}

// Option configura StockUseCase.
type Option func(*StockUseCase)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *StockUseCase) { uc.now = now }
}

// WithWarningDays fija la ventana de "por vencer".
func WithWarningDays(days int) Option {
	return func(uc *StockUseCase) { uc.warningDays = days }
}

// WithLogger asigna el logger de diagnóstico.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *StockUseCase) { uc.log = log }
}

// WithReports habilita la exportación PDF hacia dir.
func WithReports(gen ReportGenerator, dir string) Option {
	return func(uc *StockUseCase) {
		uc.reports = gen
		uc.reportsDir = dir
	}
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.InventoryRepository, events repository.EventLog, opts ...Option) *StockUseCase {
	uc := &StockUseCase{
		repo:        repo,
		events:      events,
		now:         time.Now,
		warningDays: inventory.DefaultWarningDays,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Today devuelve el instante actual según el reloj del caso de uso.
func (uc *StockUseCase) Today() time.Time { return uc.now() }

// WarningDays ventana configurada de "por vencer".
func (uc *StockUseCase) WarningDays() int { return uc.warningDays }

// Load carga el inventario (vacío si el documento no existe o es inválido).
func (uc *StockUseCase) Load() *entity.Inventory {
	return uc.repo.Load()
}

// AddProduct da de alta un producto o, si la clave ya existe, suma la cantidad y actualiza el precio.
func (uc *StockUseCase) AddProduct(inv *entity.Inventory, in dto.ProductDraft) (*dto.AddProductResult, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	category, _ := entity.ParseCategory(in.Category)

	if decimal.NewFromInt(in.MinStock).GreaterThan(in.Quantity) {
		return nil, fmt.Errorf("stock mínimo %d > cantidad %s: %w", in.MinStock, in.Quantity, domain.ErrConstraintViolation)
	}
	intake, err := inventory.ParseIntakeDate(inventory.NormalizeDate(in.IntakeDate), uc.now())
	if err != nil {
		return nil, err
	}
	expiry, err := inventory.ParseExpiryDate(inventory.NormalizeDate(in.Expiry), intake)
	if err != nil {
		return nil, err
	}

	key := in.Key()
	product := &entity.Product{
		Name:         in.Name,
		Brand:        in.Brand,
		Presentation: in.Presentation,
		Quantity:     in.Quantity,
		Price:        in.Price,
		MinStock:     entity.Int64Ptr(in.MinStock),
		Expiry:       entity.StringPtr(inventory.FormatDate(expiry)),
		IntakeDate:   entity.StringPtr(inventory.FormatDate(intake)),
		Category:     category,
	}

	res := inventory.Upsert(inv, key, product)

	var events []string
	if res.Created {
		events = append(events, fmt.Sprintf("🆕 Se agregó un nuevo producto: '%s'.", key))
	} else {
		if res.PriceChanged {
			events = append(events, fmt.Sprintf("💲 Se actualizó el precio de '%s'.", key))
		}
		events = append(events, fmt.Sprintf("➕ Se agregó cantidad a '%s'.", key))
	}
	if err := uc.commit(inv, events...); err != nil {
		return nil, err
	}

	return &dto.AddProductResult{
		Key:           key,
		Created:       res.Created,
		PriceChanged:  res.PriceChanged,
		PreviousPrice: res.PreviousPrice,
		Product:       res.Product,
	}, nil
}

// DeleteProduct elimina el producto de la clave. La confirmación es responsabilidad del llamador.
func (uc *StockUseCase) DeleteProduct(inv *entity.Inventory, key string) (*entity.Product, error) {
	removed, ok := inv.Delete(key)
	if !ok {
		return nil, fmt.Errorf("eliminar '%s': %w", key, domain.ErrNotFound)
	}
	if err := uc.commit(inv, fmt.Sprintf("🗑 Producto eliminado: '%s' (%s)", key, removed.Brand)); err != nil {
		return nil, err
	}
	return removed, nil
}

// EditProduct valida y aplica el nuevo valor de un campo. Los errores de validación dejan el
// producto intacto y pueden re-preguntarse (domain.IsValidation).
func (uc *StockUseCase) EditProduct(inv *entity.Inventory, key string, in dto.EditRequest) (*dto.EditResult, error) {
	current, ok := inv.Get(key)
	if !ok {
		return nil, fmt.Errorf("editar '%s': %w", key, domain.ErrNotFound)
	}

	// Se trabaja sobre una copia para no dejar el registro a medio modificar.
	p := current.Clone()
	if err := uc.applyEdit(p, in); err != nil {
		return nil, err
	}

	newKey := key
	if in.Field == dto.EditBrand || in.Field == dto.EditPresentation {
		newKey = p.Key()
		if newKey != key && inv.Has(newKey) {
			return nil, fmt.Errorf("'%s': %w", newKey, domain.ErrDuplicate)
		}
	}

	*current = *p
	if newKey != key {
		if err := inv.Rename(key, newKey); err != nil {
			return nil, err
		}
	}
	if err := uc.commit(inv, fmt.Sprintf("✏️ Producto editado: '%s' (campo: %s)", newKey, in.Field)); err != nil {
		return nil, err
	}

	return &dto.EditResult{Key: newKey, OldKey: key, Field: in.Field, Product: current}, nil
}

func (uc *StockUseCase) applyEdit(p *entity.Product, in dto.EditRequest) error {
	switch in.Field {
	case dto.EditBrand:
		p.Brand = in.Value
	case dto.EditPresentation:
		p.Presentation = in.Value
	case dto.EditQuantity:
		q, err := inventory.ParseQuantity(in.Value)
		if err != nil {
			return err
		}
		p.Quantity = q
	case dto.EditPrice:
		price, err := inventory.ParsePrice(in.Value)
		if err != nil {
			return err
		}
		p.Price = price
	case dto.EditMinStock:
		n, err := inventory.ParseMinimumStock(in.Value, p.Quantity)
		if err != nil {
			return err
		}
		p.MinStock = entity.Int64Ptr(n)
	case dto.EditIntakeDate:
		intake, err := inventory.ParseIntakeDate(inventory.NormalizeDate(in.Value), uc.now())
		if err != nil {
			return err
		}
		if p.Expiry != nil {
			if exp, err := inventory.ParseDate(*p.Expiry); err == nil && exp.Before(intake) {
				return fmt.Errorf("ingreso %s posterior al vencimiento %s: %w",
					inventory.FormatDate(intake), *p.Expiry, domain.ErrExpiryBeforeIntake)
			}
		}
		p.IntakeDate = entity.StringPtr(inventory.FormatDate(intake))
	case dto.EditExpiry:
		var intake time.Time
		if p.IntakeDate != nil {
			if t, err := inventory.ParseDate(*p.IntakeDate); err == nil {
				intake = t
			}
		}
		exp, err := inventory.ParseExpiryDate(inventory.NormalizeDate(in.Value), intake)
		if err != nil {
			return err
		}
		p.Expiry = entity.StringPtr(inventory.FormatDate(exp))
	case dto.EditCategory:
		c, ok := entity.ParseCategory(in.Value)
		if !ok {
			return fmt.Errorf("categoría %q: %w", in.Value, domain.ErrInvalidInput)
		}
		p.Category = c
	default:
		return fmt.Errorf("campo %q: %w", in.Field, domain.ErrInvalidInput)
	}
	return nil
}

// Alerts clasifica el inventario en vencidos, por vencer y bajo stock.
func (uc *StockUseCase) Alerts(inv *entity.Inventory) inventory.AlertReport {
	return inventory.Classify(inv, uc.now(), uc.warningDays)
}

// ExportReport genera el reporte PDF del inventario y sus avisos y devuelve la ruta escrita.
func (uc *StockUseCase) ExportReport(ctx context.Context, inv *entity.Inventory) (string, error) {
	if uc.reports == nil {
		return "", fmt.Errorf("exportar reporte: generador no configurado")
	}
	now := uc.now()
	doc, err := uc.reports.GenerateInventoryReport(ctx, inventory.ListAll(inv), uc.Alerts(inv), now)
	if err != nil {
		return "", fmt.Errorf("exportar reporte: %w", err)
	}
	if err := os.MkdirAll(uc.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(uc.reportsDir, "reporte_"+now.Format("20060102_150405")+".pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("escribir reporte: %w", err)
	}
	uc.record(fmt.Sprintf("📄 Reporte exportado: %s", path))
	return path, nil
}

// commit persiste el inventario y registra los eventos del cambio. Si el guardado falla, el cambio
// queda en memoria y sus eventos se postergan hasta el próximo guardado exitoso, que también lo persiste.
func (uc *StockUseCase) commit(inv *entity.Inventory, events ...string) error {
	if err := uc.repo.Save(inv); err != nil {
		uc.pending = append(uc.pending, events...)
		uc.log.Error().Err(err).Int("eventos_pendientes", len(uc.pending)).Msg("guardar inventario")
		return fmt.Errorf("guardar inventario: %w", err)
	}
	for _, msg := range uc.pending {
		uc.record(msg)
	}
	uc.pending = nil
	for _, msg := range events {
		uc.record(msg)
	}
	return nil
}

// record escribe en el historial. Un fallo del historial no revierte un cambio ya guardado.
func (uc *StockUseCase) record(msg string) {
	if err := uc.events.Record(msg); err != nil {
		uc.log.Warn().Err(err).Str("evento", msg).Msg("no se pudo escribir el historial")
		return
	}
	uc.log.Debug().Str("evento", msg).Msg("cambio registrado")
}
