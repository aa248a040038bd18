package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/sanitize"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional:
// bloqueo de fila del producto (SELECT FOR UPDATE), validación de stock, actualización
// del stock cacheado e inserción del movimiento, con Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *RecordMovementUseCase) WithClock(now func() time.Time) *RecordMovementUseCase {
	uc.now = now
	return uc
}

// MovementInput entrada del ledger. UserID es el usuario autenticado, nunca el enviado por el cliente.
type MovementInput struct {
	ProductID int64
	Category  string // INBOUND/OUTBOUND o alias ENTRADA/SAIDA
	Quantity  int
	UserID    int64
	Note      string
}

// RecordMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID int64, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	return uc.RecordMovement(ctx, MovementInput{
		ProductID: in.Produto,
		Category:  in.Categoria,
		Quantity:  in.Quantidade,
		UserID:    userID,
		Note:      in.Observacao,
	})
}

// RecordMovement valida la entrada, abre la transacción y aplica el movimiento.
// Una salida mayor al stock devuelve un *domain.ValidationError (ErrInsufficientStock) sin mutar nada.
// El aviso de stock bajo se calcula aquí y solo viaja en la respuesta.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*dto.MovementResponse, error) {
	category := entity.NormalizeCategory(input.Category)
	if category == "" {
		return nil, domain.NewValidationError("categoria_movimentacao", "Categoria inválida: use INBOUND ou OUTBOUND.")
	}
	if input.Quantity <= 0 {
		return nil, domain.NewValidationError(domaininv.FieldQuantity, "A quantidade deve ser um inteiro positivo.")
	}
	if input.ProductID <= 0 {
		return nil, domain.NewValidationError("produto", "Produto é obrigatório.")
	}
	if input.UserID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	input.Category = category
	input.Note = sanitize.Text(input.Note)

	var (
		detail  *entity.MovementDetail
		product *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		var err error
		product, err = productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return &domain.ValidationError{Field: "produto", Message: "Produto não encontrado.", Err: domain.ErrNotFound}
		}
		detail, err = uc.RecordInTx(ctx, productRepo, movRepo, product, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := ToMovementResponse(detail)
	if category == entity.MovementOutbound && product.IsLowStock() {
		out.AlertaEstoque = LowStockMessage(product)
		log.Warn().
			Int64("produto_id", product.ID).
			Int("estoque_atual", product.CurrentStock).
			Int("estoque_minimo", product.MinimumStock).
			Msg("estoque baixo após saída")
	}
	log.Info().
		Int64("movimentacao_id", detail.ID).
		Int64("produto_id", detail.ProductID).
		Str("categoria", detail.Category).
		Int("quantidade", detail.Quantity).
		Int64("usuario_id", detail.UserID).
		Msg("movimentação registrada")
	return &out, nil
}

// RecordInTx aplica el movimiento usando los repositorios proporcionados (misma transacción del caller).
// product debe haberse leído con GetForUpdate; su CurrentStock queda actualizado al volver.
func (uc *RecordMovementUseCase) RecordInTx(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	product *entity.Product,
	input MovementInput,
) (*entity.MovementDetail, error) {
	newStock, err := domaininv.ApplyMovement(product.CurrentStock, input.Category, input.Quantity)
	if err != nil {
		return nil, err
	}
	if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
		return nil, err
	}
	mov := &entity.Movement{
		ProductID: product.ID,
		Category:  input.Category,
		Quantity:  input.Quantity,
		Date:      uc.now().UTC(),
		UserID:    input.UserID,
		Note:      input.Note,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	product.CurrentStock = newStock

	detail, err := movRepo.GetByID(ctx, mov.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("movimiento %d no encontrado tras insertar", mov.ID)
	}
	return detail, nil
}

// LowStockMessage texto del aviso de stock bajo.
func LowStockMessage(p *entity.Product) string {
	return fmt.Sprintf(
		"Atenção: o estoque de %s está em %d %s, igual ou abaixo do mínimo de %d.",
		p.Name, p.CurrentStock, p.Unit, p.MinimumStock,
	)
}

// ToMovementResponse convierte el detalle de un movimiento a su DTO.
func ToMovementResponse(m *entity.MovementDetail) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		Produto:     m.ProductID,
		ProdutoNome: m.ProductName,
		Categoria:   m.Category,
		Quantidade:  m.Quantity,
		Data:        m.Date,
		Usuario:     m.UserID,
		UsuarioNome: m.UserDisplayName,
		Observacao:  m.Note,
	}
}
