package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/report"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	RecordMovement *inventory.RecordMovementUseCase
	MovementQuery  *inventory.MovementQueryUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	StockReport    *report.StockReportUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Metrics        *Metrics      // opcional: expone /metrics
	Health         fiber.Handler // opcional: expone /health
}

// Router registra las rutas de la API. Con StrictRouting desactivado la barra final es opcional.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health)
	}
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Tokens (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/token", authHandler.Token)
	api.Post("/token/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token de acceso)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/user/info", userHandler.Info)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC, deps.StockReport)
	inventoryHandler := NewInventoryHandler(deps.RecordMovement, deps.MovementQuery, deps.Replenishment, deps.Metrics)
	products := protected.Group("/produtos")
	products.Get("/relatorio", productHandler.Report)
	products.Get("/reposicao", inventoryHandler.GetReplenishmentList)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.Patch)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos (append-only)
	movements := protected.Group("/movimentacoes")
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Post("/", inventoryHandler.RecordMovement)
	movements.Get("/:id", inventoryHandler.GetMovement)
	movements.Put("/:id", inventoryHandler.RejectMutation)
	movements.Patch("/:id", inventoryHandler.RejectMutation)
	movements.Delete("/:id", inventoryHandler.RejectMutation)
}
