package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestGenerateStockReport_ProducesPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	data := report.StockReportData{
		Title:       "Relatório de Estoque",
		GeneratedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		Products: []*entity.Product{
			{ID: 1, Name: "Arruela", Unit: "unidade", CurrentStock: 50, MinimumStock: 10},
			{ID: 2, Name: "Parafuso", Unit: "caixa", CurrentStock: 2, MinimumStock: 5},
		},
		LowStockCount: 1,
	}

	b, err := g.GenerateStockReport(context.Background(), data)
	require.NoError(t, err)
	require.True(t, len(b) > 4)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateStockReport_EmptyCatalog(t *testing.T) {
	b, err := NewMarotoPDFGenerator().GenerateStockReport(context.Background(), report.StockReportData{
		Title:       "Vazio",
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "25.000", formatThousands(25000))
	assert.Equal(t, "1.000.000", formatThousands(1000000))
	assert.Equal(t, "-1.500", formatThousands(-1500))
}
