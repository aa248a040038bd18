package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/estoque-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503),
// por ejemplo al borrar un producto o usuario con movimientos (ON DELETE RESTRICT).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// Nombres por defecto de las FK de movimentacoes (001_init.sql).
const (
	fkMovementProduct = "movimentacoes_produto_id_fkey"
	fkMovementUser    = "movimentacoes_usuario_id_fkey"
)

// violatedConstraint devuelve el nombre de la constraint violada, o "" si no es un error de Postgres.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// movementInsertError traduce la violación de FK al insertar un movimiento.
// El producto ya está bloqueado en la transacción, así que lo habitual es que falte
// el usuario del token (eliminado tras emitirlo).
func movementInsertError(err error) error {
	if violatedConstraint(err) == fkMovementProduct {
		return &domain.ValidationError{Field: "produto", Message: "Produto não encontrado.", Err: domain.ErrNotFound}
	}
	return domain.ErrUnauthorized
}
