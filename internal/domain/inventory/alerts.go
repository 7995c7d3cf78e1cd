package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// DefaultWarningDays ventana (inclusiva) de aviso de vencimiento próximo.
const DefaultWarningDays = 7

// AlertReport resultado de clasificar el inventario. El valor cero significa "no calculado".
type AlertReport struct {
	Expired      []entity.Entry
	ExpiringSoon []entity.Entry
	LowStock     []entity.Entry
	GeneratedAt  time.Time
}

// Computed indica si el reporte fue calculado.
func (r AlertReport) Computed() bool {
	return !r.GeneratedAt.IsZero()
}

// AllClear es verdadero sólo para un reporte calculado sin vencidos, por vencer ni bajo stock.
func (r AlertReport) AllClear() bool {
	return r.Computed() && len(r.Expired) == 0 && len(r.ExpiringSoon) == 0 && len(r.LowStock) == 0
}

// Classify separa los productos en vencidos, por vencer (hoy..hoy+windowDays inclusive) y bajo stock
// (cantidad <= stock mínimo). Las dos comprobaciones son independientes: la de vencimiento sólo
// necesita una fecha de vencimiento legible y la de stock sólo el stock mínimo.
// Un producto nunca está a la vez en vencidos y por vencer.
func Classify(inv *entity.Inventory, today time.Time, windowDays int) AlertReport {
	day := StartOfDay(today)
	limit := day.AddDate(0, 0, windowDays)

	report := AlertReport{
		Expired:      []entity.Entry{},
		ExpiringSoon: []entity.Entry{},
		LowStock:     []entity.Entry{},
		GeneratedAt:  today,
	}
	for _, e := range inv.Entries() {
		p := e.Product
		if p.Expiry != nil {
			if exp, err := ParseDate(*p.Expiry); err == nil {
				switch {
				case exp.Before(day):
					report.Expired = append(report.Expired, e)
				case !exp.After(limit):
					report.ExpiringSoon = append(report.ExpiringSoon, e)
				}
			}
		}
		if p.MinStock != nil && p.Quantity.LessThanOrEqual(decimal.NewFromInt(*p.MinStock)) {
			report.LowStock = append(report.LowStock, e)
		}
	}
	return report
}
