package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementDetailSelect = `
	SELECT m.id, m.produto_id, m.categoria, m.quantidade, m.data, m.usuario_id, m.observacao,
	       p.nome, u.username, u.first_name, u.last_name
	FROM movimentacoes m
	JOIN produtos p ON p.id = m.produto_id
	JOIN usuarios u ON u.id = m.usuario_id`

// MovementRepo implementación del puerto MovementRepository (append-only).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y completa su ID.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (produto_id, categoria, quantidade, data, usuario_id, observacao)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.Category, m.Quantity, m.Date, m.UserID, m.Note,
	).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return movementInsertError(err)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene el movimiento con el nombre del producto y del usuario.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.MovementDetail, error) {
	row := r.q.QueryRow(ctx, movementDetailSelect+` WHERE m.id = $1`, id)
	d, err := scanMovementDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return d, nil
}

// List devuelve los movimientos del más reciente al más antiguo; id desempata fechas iguales.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.MovementDetail, error) {
	query := movementDetailSelect + ` WHERE 1=1`
	var args []any
	if filter.ProductID > 0 {
		args = append(args, filter.ProductID)
		query += fmt.Sprintf(" AND m.produto_id = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND m.categoria = $%d", len(args))
	}
	query += " ORDER BY m.data DESC, m.id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MovementDetail, 0)
	for rows.Next() {
		d, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanMovementDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var d entity.MovementDetail
	var username, first, last string
	err := row.Scan(&d.ID, &d.ProductID, &d.Category, &d.Quantity, &d.Date, &d.UserID, &d.Note,
		&d.ProductName, &username, &first, &last)
	if err != nil {
		return nil, err
	}
	d.UserDisplayName = entity.DisplayName(first, last, username)
	return &d, nil
}
