package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// Campo del request reportado cuando la salida supera el stock.
const FieldQuantity = "quantidade_movimentacao"

// MaxStock límite de las columnas INTEGER de cantidades y stock.
const MaxStock = math.MaxInt32

// MsgInsufficientStock mensaje devuelto al cliente en salidas mayores al stock actual.
const MsgInsufficientStock = "A quantidade de saída é maior que o estoque atual."

// ApplyMovement calcula el nuevo stock tras aplicar un movimiento (servicio de dominio).
// Una salida mayor al stock actual devuelve un ValidationError sobre ErrInsufficientStock
// y el stock original sin cambios.
func ApplyMovement(currentStock int, category string, quantity int) (int, error) {
	if quantity <= 0 {
		return currentStock, domain.NewValidationError(FieldQuantity, "A quantidade deve ser um inteiro positivo.")
	}
	if quantity > MaxStock {
		return currentStock, domain.NewValidationError(FieldQuantity, fmt.Sprintf("Certifique-se de que este valor seja menor ou igual a %d.", MaxStock))
	}
	switch category {
	case entity.MovementInbound:
		if quantity > MaxStock-currentStock {
			return currentStock, domain.NewValidationError(FieldQuantity, "A entrada excede o estoque máximo permitido.")
		}
		return currentStock + quantity, nil
	case entity.MovementOutbound:
		if quantity > currentStock {
			return currentStock, &domain.ValidationError{
				Field:   FieldQuantity,
				Message: MsgInsufficientStock,
				Err:     domain.ErrInsufficientStock,
			}
		}
		return currentStock - quantity, nil
	}
	return currentStock, domain.NewValidationError("categoria_movimentacao", "Categoria inválida: use INBOUND ou OUTBOUND.")
}

// Replay recalcula el stock desde cero sumando los movimientos con signo.
func Replay(movements []entity.Movement) int {
	total := 0
	for i := range movements {
		total += movements[i].SignedQuantity()
	}
	return total
}
