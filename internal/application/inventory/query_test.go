package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestMovementQuery_ListNewestFirstWithFilters(t *testing.T) {
	f := newFixture(t)
	a := f.addProduct(t, "Alicate", 5, 1)
	b := f.addProduct(t, "Broca", 7, 1)
	_, err := f.uc.RecordMovement(context.Background(), inventory.MovementInput{
		ProductID: a.ID, Category: entity.MovementOutbound, Quantity: 2, UserID: f.userID,
	})
	require.NoError(t, err)

	q := inventory.NewMovementQueryUseCase(f.store.Movements())

	all, err := q.List(context.Background(), dto.MovementListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Data.After(all[i-1].Data), "ordem decrescente por data")
	}
	assert.Equal(t, entity.MovementOutbound, all[0].Categoria)

	onlyB, err := q.List(context.Background(), dto.MovementListQuery{Produto: b.ID})
	require.NoError(t, err)
	require.Len(t, onlyB, 1)
	assert.Equal(t, "Broca", onlyB[0].ProdutoNome)

	outs, err := q.List(context.Background(), dto.MovementListQuery{Categoria: "saida"})
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, a.ID, outs[0].Produto)
}

func TestMovementQuery_GetByID(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Serrote", 1, 1)
	q := inventory.NewMovementQueryUseCase(f.store.Movements())

	list, err := q.List(context.Background(), dto.MovementListQuery{Produto: p.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := q.GetByID(context.Background(), list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Maria Souza", got.UsuarioNome)

	missing, err := q.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMovementQuery_CategoriaDesconocida(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "Alicate", 5, 1)
	q := inventory.NewMovementQueryUseCase(f.store.Movements())

	list, err := q.List(context.Background(), dto.MovementListQuery{Categoria: "AJUSTE"})
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "categoria", vErr.Field)

	all, err := q.List(context.Background(), dto.MovementListQuery{Categoria: "  "})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
