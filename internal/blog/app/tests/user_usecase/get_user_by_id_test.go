package userusecase_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goblognest/internal/blog/app"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/cache"
)

const profileKey = "user:profile:1"

func TestUserUseCase_GetUserByID(t *testing.T) {
	ctx := testContext(t)

	storedUser := &entities.User{ID: 1, Username: "blogger", Email: "blogger@example.com"}

	t.Run("попадание в кэш не трогает репозиторий", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)
		profileCache := new(mockCache)

		payload, err := json.Marshal(storedUser)
		require.NoError(t, err)
		profileCache.On("Get", mock.Anything, profileKey).Return(string(payload), nil)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, profileCache)
		user, err := useCase.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, storedUser.Username, user.Username)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("промах кэша читает репозиторий и кэширует профиль", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)
		profileCache := new(mockCache)

		profileCache.On("Get", mock.Anything, profileKey).Return("", cache.ErrCacheMiss)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(storedUser, nil)
		profileCache.On("Set", mock.Anything, profileKey, mock.Anything, mock.Anything).Return(nil)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, profileCache)
		user, err := useCase.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
		profileCache.AssertExpectations(t)
	})

	t.Run("ошибка кэша не фатальна", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)
		profileCache := new(mockCache)

		cacheErr := errors.New("redis connection refused")
		profileCache.On("Get", mock.Anything, profileKey).Return("", cacheErr)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(storedUser, nil)
		profileCache.On("Set", mock.Anything, profileKey, mock.Anything, mock.Anything).Return(cacheErr)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, profileCache)
		user, err := useCase.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})

	t.Run("без кэша чтение идет напрямую в репозиторий", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		userRepo.On("GetByID", mock.Anything, int64(1)).Return(storedUser, nil)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, nil)
		user, err := useCase.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})
}

func TestUserUseCase_UpdateUsername(t *testing.T) {
	ctx := testContext(t)

	t.Run("успешная смена имени сбрасывает кэш профиля", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)
		profileCache := new(mockCache)

		command := &dto.UpdateUsernameDTO{ID: 1, Username: "newname"}
		updated := &entities.User{ID: 1, Username: "newname"}

		userRepo.On("UpdateUsername", mock.Anything, command).Return(updated, nil)
		profileCache.On("Delete", mock.Anything, profileKey).Return(nil)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, profileCache)
		user, err := useCase.UpdateUsername(ctx, command)

		require.NoError(t, err)
		assert.Equal(t, "newname", user.Username)
		profileCache.AssertExpectations(t)
	})

	t.Run("ошибка репозитория не трогает кэш", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)
		profileCache := new(mockCache)

		command := &dto.UpdateUsernameDTO{ID: 1, Username: "newname"}
		repoErr := errors.New("database unavailable")

		userRepo.On("UpdateUsername", mock.Anything, command).Return(nil, repoErr)

		useCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, profileCache)
		user, err := useCase.UpdateUsername(ctx, command)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, repoErr)
		profileCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
