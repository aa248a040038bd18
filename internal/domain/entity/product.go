package entity

import "time"

// UnidadePadrao unidad de medida asignada cuando el request no la informa.
const UnidadePadrao = "unidade"

// EstoqueMinimoPadrao umbral de alerta por defecto.
const EstoqueMinimoPadrao = 1

// Product representa un producto del inventario.
// CurrentStock es un valor cacheado: solo lo modifica el ledger al registrar movimientos.
type Product struct {
	ID           int64
	Name         string // único
	Description  string
	CurrentStock int
	MinimumStock int // umbral para el aviso de stock bajo
	Unit         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}
