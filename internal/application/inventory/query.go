package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el historial de movimientos.
type MovementQueryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(repo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// List devuelve los movimientos del más reciente al más antiguo.
// Una categoría no reconocida es un error de validación, no un filtro vacío.
func (uc *MovementQueryUseCase) List(ctx context.Context, q dto.MovementListQuery) ([]dto.MovementResponse, error) {
	category := ""
	if strings.TrimSpace(q.Categoria) != "" {
		category = entity.NormalizeCategory(q.Categoria)
		if category == "" {
			return nil, domain.NewValidationError("categoria", "Categoria inválida: use INBOUND ou OUTBOUND.")
		}
	}
	list, err := uc.repo.List(ctx, repository.MovementFilter{
		ProductID: q.Produto,
		Category:  category,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return items, nil
}

// GetByID obtiene un movimiento; (nil, nil) si no existe.
func (uc *MovementQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	out := ToMovementResponse(m)
	return &out, nil
}
