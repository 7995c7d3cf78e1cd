package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/inventory"
)

// ReportGenerator genera la representación PDF del inventario y sus avisos.
type ReportGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		entries []entity.Entry,
		alerts inventory.AlertReport,
		generatedAt time.Time,
	) ([]byte, error)
}
