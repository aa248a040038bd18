package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// MovementFilter criterios opcionales del listado de movimientos.
type MovementFilter struct {
	ProductID int64  // 0 = todos
	Category  string // "" = todas
}

// MovementRepository define el puerto de persistencia para movimientos.
// No expone Update ni Delete: los movimientos son inmutables.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error)
	// List devuelve los movimientos del más reciente al más antiguo.
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementDetail, error)
}
