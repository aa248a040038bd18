package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de movimientos y reposición (protegido).
type InventoryHandler struct {
	record        *inventory.RecordMovementUseCase
	query         *inventory.MovementQueryUseCase
	replenishment *inventory.ReplenishmentUseCase
	metrics       *Metrics
}

// NewInventoryHandler construye el handler. metrics puede ser nil.
func NewInventoryHandler(
	record *inventory.RecordMovementUseCase,
	query *inventory.MovementQueryUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	metrics *Metrics,
) *InventoryHandler {
	return &InventoryHandler{record: record, query: query, replenishment: replenishment, metrics: metrics}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  usuario y data_movimentacao los completa el servidor. Una salida mayor al stock devuelve 400.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "produto, categoria_movimentacao (INBOUND|OUTBOUND), quantidade_movimentacao"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/ [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.record.RecordMovementFromRequest(c.Context(), userID, in)
	if err != nil {
		h.metrics.ObserveRejectedMovement(err)
		return writeError(c, err)
	}
	h.metrics.ObserveMovement(out.Categoria, out.AlertaEstoque != "")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        produto    query  int     false  "ID del producto"
// @Param        categoria  query  string  false  "INBOUND|OUTBOUND"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movimentacoes/ [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.query.List(c.Context(), dto.MovementListQuery{
		Produto:   int64(c.QueryInt("produto", 0)),
		Categoria: c.Query("categoria"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id}/ [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c, "movimentação não encontrada")
	}
	out, err := h.query.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "movimentação não encontrada")
	}
	return c.JSON(out)
}

// RejectMutation responde 405 a PUT/PATCH/DELETE sobre movimientos.
func (h *InventoryHandler) RejectMutation(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, "GET, HEAD, OPTIONS")
	return writeError(c, domain.ErrImmutable)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo el stock mínimo con la cantidad sugerida para llegar al stock ideal.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/produtos/reposicao/ [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":      len(list),
		"reposicoes": list,
	})
}
