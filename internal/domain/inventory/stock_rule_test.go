package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

func TestApplyMovement_EntradaSuma(t *testing.T) {
	got, err := inventory.ApplyMovement(10, entity.MovementInbound, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
}

func TestApplyMovement_SalidaResta(t *testing.T) {
	got, err := inventory.ApplyMovement(10, entity.MovementOutbound, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "una salida igual al stock deja el producto en cero")
}

func TestApplyMovement_SalidaMayorAlStock(t *testing.T) {
	got, err := inventory.ApplyMovement(2, entity.MovementOutbound, 5)
	require.Error(t, err)
	assert.Equal(t, 2, got)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, inventory.FieldQuantity, vErr.Field)
	assert.Equal(t, inventory.MsgInsufficientStock, vErr.Message)
}

func TestApplyMovement_CantidadNoPositiva(t *testing.T) {
	for _, q := range []int{0, -3} {
		_, err := inventory.ApplyMovement(10, entity.MovementInbound, q)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad %d debe ser rechazada", q)
	}
}

func TestApplyMovement_CategoriaInvalida(t *testing.T) {
	_, err := inventory.ApplyMovement(10, "TRANSFER", 1)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "categoria_movimentacao", vErr.Field)
}

// Cualquier secuencia aceptada deja el stock igual a entradas menos salidas.
func TestApplyMovement_ReplayCoincideConStock(t *testing.T) {
	seq := []entity.Movement{
		{Category: entity.MovementInbound, Quantity: 10},
		{Category: entity.MovementOutbound, Quantity: 3},
		{Category: entity.MovementOutbound, Quantity: 9}, // rechazada: 7 < 9
		{Category: entity.MovementInbound, Quantity: 4},
		{Category: entity.MovementOutbound, Quantity: 11},
	}
	stock := 0
	var accepted []entity.Movement
	for _, m := range seq {
		next, err := inventory.ApplyMovement(stock, m.Category, m.Quantity)
		if err != nil {
			continue
		}
		stock = next
		accepted = append(accepted, m)
	}
	assert.Equal(t, 0, stock)
	assert.Len(t, accepted, 4)
	assert.Equal(t, stock, inventory.Replay(accepted))
}

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"INBOUND":  entity.MovementInbound,
		"entrada":  entity.MovementInbound,
		"OUTBOUND": entity.MovementOutbound,
		" SAIDA ":  entity.MovementOutbound,
		"ajuste":   "",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.NormalizeCategory(in), in)
	}
}

func TestApplyMovement_LimiteDeLaColumna(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		category string
		quantity int
	}{
		{"entrada desborda int", 1, entity.MovementInbound, math.MaxInt},
		{"entrada supera el maximo", 10, entity.MovementInbound, inventory.MaxStock - 9},
		{"cantidad mayor que la columna", 0, entity.MovementOutbound, inventory.MaxStock + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inventory.ApplyMovement(tt.stock, tt.category, tt.quantity)
			require.Error(t, err)
			assert.Equal(t, tt.stock, got)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, inventory.FieldQuantity, vErr.Field)
		})
	}

	got, err := inventory.ApplyMovement(10, entity.MovementInbound, inventory.MaxStock-10)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStock, got)
}
