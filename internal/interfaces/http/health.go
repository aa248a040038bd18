package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/hellofresh/health-go/v5"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHealthHandler construye el handler de /health con el chequeo de la base de datos.
func NewHealthHandler(appName, version string, db Pinger) (fiber.Handler, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    appName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(health.Config{
			Name:      "postgres",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check:     db.Ping,
		}),
	)
	if err != nil {
		return nil, err
	}
	return adaptor.HTTPHandler(h.Handler()), nil
}
