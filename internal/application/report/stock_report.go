package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// StockReportUseCase genera el reporte PDF con el stock actual de todos los productos.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	generator   StockReportGenerator
	title       string
	now         func() time.Time
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(productRepo repository.ProductRepository, generator StockReportGenerator, title string) *StockReportUseCase {
	if title == "" {
		title = "Relatório de Estoque"
	}
	return &StockReportUseCase{productRepo: productRepo, generator: generator, title: title, now: time.Now}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *StockReportUseCase) Generate(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar productos: %w", err)
	}
	low := 0
	for _, p := range products {
		if p.IsLowStock() {
			low++
		}
	}
	now := uc.now()
	data := StockReportData{
		Title:         uc.title,
		GeneratedAt:   now,
		Products:      products,
		LowStockCount: low,
	}
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("estoque-%s.pdf", now.Format("20060102-1504")), nil
}
