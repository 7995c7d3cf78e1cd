// Package pdf genera el reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + app        │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / unidades / valor total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Mín. | Precio | Vence │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AVISOS: vencidos / por vencer / stock bajo                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/control-stock/internal/application/usecase"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorOrange  = &props.Color{Red: 220, Green: 120, Blue: 0}
	colorAmber   = &props.Color{Red: 170, Green: 130, Blue: 0}
	colorGreen   = &props.Color{Red: 30, Green: 130, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	appName string
	printer *message.Printer
}

var _ usecase.ReportGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador. appName aparece en el encabezado.
func NewMarotoReportGenerator(appName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{
		appName: appName,
		printer: message.NewPrinter(language.Spanish),
	}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	ctx context.Context,
	entries []entity.Entry,
	alerts inventory.AlertReport,
	generatedAt time.Time,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(entries))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(entries) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("El inventario está vacío.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(g.tableDetailRows(entries)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(alertRows(alerts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.appName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: cantidad de productos, unidades en stock y valor (cantidad × precio).
func (g *MarotoReportGenerator) summaryRow(entries []entity.Entry) core.Row {
	v := inventory.Value(entries)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Productos: %d   |   Unidades: %s   |   Valor total: %s",
				v.Products, g.formatUnits(v.Units), g.formatMoney(v.Value),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Vence", 2, align.Center),
	)
}

// tableDetailRows: una fila por producto, en orden de inserción.
func (g *MarotoReportGenerator) tableDetailRows(entries []entity.Entry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		p := e.Product
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(e.Key, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.CategoryText(), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(g.formatUnits(p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(p.MinStockText(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.formatMoney(p.Price), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(p.ExpiryText(), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// alertRows: las tres secciones de avisos, o una leyenda verde si no hay ninguno.
func alertRows(alerts inventory.AlertReport) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("AVISOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if alerts.AllClear() {
		return append(rows, row.New(7).Add(col.New(12).Add(
			text.New("No hay productos vencidos, por vencer ni con bajo stock.", props.Text{
				Size: 9, Color: colorGreen, Top: 1,
			}),
		)))
	}

	section := func(title string, c *props.Color, entries []entity.Entry, detail func(*entity.Product) string) {
		if len(entries) == 0 {
			return
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: c, Top: 1}),
		)))
		for _, e := range entries {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New("- "+e.Key+" "+detail(e.Product), props.Text{Size: 8, Left: 3, Top: 0.5}),
			)))
		}
	}

	vence := func(p *entity.Product) string { return "(vence: " + p.ExpiryText() + ")" }
	section("Productos vencidos", colorRed, alerts.Expired, vence)
	section("Productos por vencer", colorOrange, alerts.ExpiringSoon, vence)
	section("Productos con stock bajo", colorAmber, alerts.LowStock, func(p *entity.Product) string {
		return fmt.Sprintf("(stock: %s, mínimo: %s)", p.Quantity.String(), p.MinStockText())
	})
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney usa separadores de miles y decimales en español.
func (g *MarotoReportGenerator) formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return g.printer.Sprintf("$%.2f", f)
}

func (g *MarotoReportGenerator) formatUnits(d decimal.Decimal) string {
	return g.printer.Sprintf("%d", d.IntPart())
}
