package report

import (
	"context"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// StockReportData contenido del reporte de stock.
type StockReportData struct {
	Title         string
	GeneratedAt   time.Time
	Products      []*entity.Product // orden alfabético
	LowStockCount int
}

// StockReportGenerator puerto para generar la representación gráfica (PDF) del reporte.
// Implementado en infrastructure/pdf.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
