package inventory

import (
	"context"
	"sort"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición: productos en o bajo el stock mínimo
// con la cantidad sugerida para volver al stock ideal.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo}
}

// IdealStock stock objetivo tras reponer: 1,5 veces el mínimo redondeado hacia arriba.
func IdealStock(minimum int) int {
	return (minimum*3 + 1) / 2
}

// GenerateReplenishmentList devuelve los productos con stock bajo y la cantidad sugerida de pedido.
// Orden: mayor déficit respecto al mínimo primero; empate por nombre.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestion, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{LowStockOnly: true})
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestion, 0, len(products))
	for _, p := range products {
		ideal := IdealStock(p.MinimumStock)
		qty := ideal - p.CurrentStock
		if qty <= 0 {
			// mínimo 0 con stock 0: nada que reponer
			continue
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestion{
			Produto:            p.ID,
			ProdutoNome:        p.Name,
			Unidade:            p.Unit,
			EstoqueAtual:       p.CurrentStock,
			EstoqueMinimo:      p.MinimumStock,
			EstoqueIdeal:       ideal,
			QuantidadeSugerida: qty,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.EstoqueMinimo - a.EstoqueAtual
		defB := b.EstoqueMinimo - b.EstoqueAtual
		if defA != defB {
			return defA > defB
		}
		return a.ProdutoNome < b.ProdutoNome
	})

	// Prioridad 1 = más urgente
	for i := range suggestions {
		suggestions[i].Prioridade = i + 1
	}
	return suggestions, nil
}
