package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository/mocks"
)

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - password hashed", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.On("GetByUsername", ctx, "ana").Return(nil, nil).Once()
		var saved *entity.User
		repo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*entity.User)
				saved.ID = 3
			}).
			Return(nil).Once()

		out, err := usecase.NewUserUseCase(repo).Create(ctx, dto.CreateUserRequest{
			Username: "ana", Password: "senhaforte", FirstName: "Ana", LastName: "Lima",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.ID)
		assert.Equal(t, "Ana", out.FirstName)
		require.NotNil(t, saved)
		assert.True(t, saved.Active)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("senhaforte")))
	})

	t.Run("Failure - duplicate username", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.On("GetByUsername", ctx, "ana").Return(&entity.User{ID: 1, Username: "ana"}, nil).Once()

		_, err := usecase.NewUserUseCase(repo).Create(ctx, dto.CreateUserRequest{Username: "ana", Password: "senhaforte"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("Failure - short password", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)

		_, err := usecase.NewUserUseCase(repo).Create(ctx, dto.CreateUserRequest{Username: "ana", Password: "123"})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "password", verr.Field)
	})
}

func TestUserUseCase_GetInfo(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewUserRepository(t)
	repo.On("GetByID", ctx, int64(4)).Return(&entity.User{ID: 4, Username: "rui", FirstName: "Rui"}, nil).Once()
	repo.On("GetByID", ctx, int64(5)).Return(nil, nil).Once()

	uc := usecase.NewUserUseCase(repo)
	info, err := uc.GetInfo(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "rui", info.Username)
	assert.Equal(t, "", info.LastName)

	missing, err := uc.GetInfo(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUseCase_DeleteByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - has movements", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.On("GetByUsername", ctx, "rui").Return(&entity.User{ID: 4, Username: "rui"}, nil).Once()
		repo.On("Delete", ctx, int64(4)).Return(domain.ErrReferenced).Once()

		err := usecase.NewUserUseCase(repo).DeleteByUsername(ctx, "rui")
		assert.ErrorIs(t, err, domain.ErrReferenced)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		repo.On("GetByUsername", ctx, "nobody").Return(nil, nil).Once()

		err := usecase.NewUserUseCase(repo).DeleteByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
