// usuarios administra las cuentas que operan el ledger de stock.
//
// Uso:
//
//	go run ./cmd/usuarios criar --username ana --password 's3nh4-forte' [--first-name Ana --last-name Souza]
//	go run ./cmd/usuarios remover --username ana
//
// La conexión se configura con las mismas variables DB_* que la API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estoque-api/pkg/config"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

const usage = `uso: usuarios <comando> [flags]

comandos:
  criar    --username U --password P [--first-name N] [--last-name S]
  remover  --username U
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cfg := config.LoadTooling()
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	os.Exit(run(ctx, uc, os.Args[1], os.Args[2:], os.Stdout, os.Stderr))
}

// userAdmin subconjunto de UserUseCase que usa la CLI.
type userAdmin interface {
	Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserInfoResponse, error)
	DeleteByUsername(ctx context.Context, username string) error
}

// run ejecuta un subcomando y devuelve el código de salida.
func run(ctx context.Context, uc userAdmin, cmd string, args []string, stdout, stderr io.Writer) int {
	switch cmd {
	case "criar":
		fs := pflag.NewFlagSet("criar", pflag.ContinueOnError)
		fs.SetOutput(stderr)
		var in dto.CreateUserRequest
		fs.StringVarP(&in.Username, "username", "u", "", "nombre de usuario")
		fs.StringVarP(&in.Password, "password", "p", "", "contraseña (mínimo 8 caracteres)")
		fs.StringVar(&in.FirstName, "first-name", "", "nombre")
		fs.StringVar(&in.LastName, "last-name", "", "apellido")
		if err := fs.Parse(args); err != nil {
			return 2
		}
		user, err := uc.Create(ctx, in)
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				fmt.Fprintf(stderr, "VALIDATION: %s: %s\n", verr.Field, verr.Message)
			case errors.Is(err, domain.ErrDuplicate):
				fmt.Fprintf(stderr, "DUPLICATE: el usuario %q ya existe\n", in.Username)
			default:
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
			return 1
		}
		fmt.Fprintf(stdout, "Usuario creado: id=%d username=%s\n", user.ID, user.Username)
		return 0

	case "remover":
		fs := pflag.NewFlagSet("remover", pflag.ContinueOnError)
		fs.SetOutput(stderr)
		username := fs.StringP("username", "u", "", "nombre de usuario")
		if err := fs.Parse(args); err != nil {
			return 2
		}
		if *username == "" {
			fmt.Fprintln(stderr, "VALIDATION: --username es obligatorio")
			return 2
		}
		err := uc.DeleteByUsername(ctx, *username)
		switch {
		case err == nil:
			fmt.Fprintf(stdout, "Usuario eliminado: %s\n", *username)
			return 0
		case errors.Is(err, domain.ErrUserNotFound):
			fmt.Fprintf(stderr, "NOT_FOUND: el usuario %q no existe\n", *username)
		case errors.Is(err, domain.ErrReferenced):
			fmt.Fprintf(stderr, "PROTECTED: el usuario %q registró movimientos y no se puede eliminar\n", *username)
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	fmt.Fprint(stderr, usage)
	return 2
}
