package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain"
)

func TestMovementInsertError(t *testing.T) {
	userFK := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: fkMovementUser})
	require.True(t, isForeignKeyViolation(userFK))
	assert.ErrorIs(t, movementInsertError(userFK), domain.ErrUnauthorized)

	productFK := &pgconn.PgError{Code: "23503", ConstraintName: fkMovementProduct}
	err := movementInsertError(productFK)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "produto", vErr.Field)
}

func TestViolationCodes(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, "", violatedConstraint(errors.New("conexión perdida")))
}
