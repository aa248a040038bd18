package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/sanitize"
)

// NotaEstoqueInicial observación del movimiento generado al crear un producto con stock.
const NotaEstoqueInicial = "Estoque inicial"

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	ledger   *inventory.RecordMovementUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, ledger *inventory.RecordMovementUseCase) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, ledger: ledger}
}

// Create crea un producto con stock 0. Si el request trae estoque_atual_produto > 0 se registra,
// en la misma transacción, una entrada "Estoque inicial" a nombre de userID.
func (uc *ProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Nome)
	if name == "" {
		return nil, domain.NewValidationError("nome_produto", "Este campo é obrigatório.")
	}
	if in.EstoqueAtual < 0 {
		return nil, domain.NewValidationError("estoque_atual_produto", "O estoque atual não pode ser negativo.")
	}
	minimum := entity.EstoqueMinimoPadrao
	if in.EstoqueMinimo != nil {
		if *in.EstoqueMinimo < 0 {
			return nil, domain.NewValidationError("estoque_minimo_produto", "O estoque mínimo não pode ser negativo.")
		}
		minimum = *in.EstoqueMinimo
	}
	unit := strings.TrimSpace(in.Unidade)
	if unit == "" {
		unit = entity.UnidadePadrao
	}
	if in.EstoqueAtual > 0 && userID <= 0 {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:         name,
		Description:  sanitize.Text(in.Descricao),
		CurrentStock: 0,
		MinimumStock: minimum,
		Unit:         unit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.EstoqueAtual == 0 {
			return nil
		}
		_, err := uc.ledger.RecordInTx(ctx, productRepo, movRepo, product, inventory.MovementInput{
			ProductID: product.ID,
			Category:  entity.MovementInbound,
			Quantity:  in.EstoqueAtual,
			UserID:    userID,
			Note:      NotaEstoqueInicial,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos ordenados por nombre, con búsqueda libre y filtro de stock bajo.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:       strings.TrimSpace(q.Busca),
		LowStockOnly: q.EstoqueBaixo,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. partial=false (PUT) exige nome_produto; partial=true (PATCH) solo aplica
// los campos presentes. Nunca modifica el stock actual. (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest, partial bool) (*dto.ProductResponse, error) {
	if !partial && in.Nome == nil {
		return nil, domain.NewValidationError("nome_produto", "Este campo é obrigatório.")
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Nome != nil {
		name := strings.TrimSpace(*in.Nome)
		if name == "" {
			return nil, domain.NewValidationError("nome_produto", "Este campo não pode ser em branco.")
		}
		product.Name = name
	}
	if in.Descricao != nil {
		product.Description = sanitize.Text(*in.Descricao)
	} else if !partial {
		product.Description = ""
	}
	if in.EstoqueMinimo != nil {
		if *in.EstoqueMinimo < 0 {
			return nil, domain.NewValidationError("estoque_minimo_produto", "O estoque mínimo não pode ser negativo.")
		}
		product.MinimumStock = *in.EstoqueMinimo
	} else if !partial {
		product.MinimumStock = entity.EstoqueMinimoPadrao
	}
	if in.Unidade != nil && strings.TrimSpace(*in.Unidade) != "" {
		product.Unit = strings.TrimSpace(*in.Unidade)
	} else if !partial {
		product.Unit = entity.UnidadePadrao
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrNotFound si no existe; ErrReferenced si tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Nome:          p.Name,
		Descricao:     p.Description,
		EstoqueAtual:  p.CurrentStock,
		EstoqueMinimo: p.MinimumStock,
		Unidade:       p.Unit,
	}
}
