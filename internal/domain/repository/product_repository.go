package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ProductFilter criterios del listado de productos.
type ProductFilter struct {
	Search       string // subcadena sin distinguir mayúsculas en nombre o descripción
	LowStockOnly bool   // solo productos con stock actual <= mínimo
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos que no encuentran la fila devuelven (nil, nil).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// Update modifica los campos editables; nunca el stock actual.
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock actualiza solo el stock cacheado (usado por el ledger).
	UpdateStock(ctx context.Context, id int64, stock int) error
	// List devuelve los productos ordenados por nombre ascendente.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// Delete devuelve domain.ErrReferenced si existen movimientos del producto.
	Delete(ctx context.Context, id int64) error
}
