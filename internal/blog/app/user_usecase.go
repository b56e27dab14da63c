// Package app реализует прикладной слой: оркестрацию проверенных команд
// поверх репозиториев и внешних сервисов.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/domain/entities"
	"goblognest/internal/blog/domain/services"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/internal/blog/ports/cache"
	"goblognest/internal/blog/ports/repositories"
	svc "goblognest/internal/blog/ports/services"
	"goblognest/pkg/logger"
)

// MsgInvalidCredentials возвращается при любом провале аутентификации, не
// раскрывая, что именно не совпало.
const MsgInvalidCredentials = "Invalid credentials"

const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodGetUsers       = "GetUsers"
	methodGetUserByID    = "GetUserByID"
	methodUpdateUsername = "UpdateUsername"
	methodUpdatePassword = "UpdatePassword"
	methodDeleteUser     = "DeleteUser"

	msgStartRegistration   = "starting user registration"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgProfileCacheHit     = "user profile served from cache"
	msgProfileCached       = "user profile cached"
	msgUsernameUpdated     = "username updated"
	msgPasswordUpdated     = "password updated"
	msgUserDeleted         = "user deleted"

	msgErrHashPassword    = "failed to hash password"
	msgErrFindingUser     = "error finding user by email"
	msgErrVerifyingPass   = "error verifying password"
	msgErrSigningToken    = "failed to sign access token"
	msgErrCacheRead       = "profile cache read failed"
	msgErrCacheWrite      = "profile cache write failed"
	msgErrCacheInvalidate = "profile cache invalidation failed"

	errCtxHashingPassword = "hashing password"
	errCtxVerifyingPass   = "verifying password"
)

const (
	userCacheKeyFormat = "user:profile:%d"
	userCacheTTL       = 5 * time.Minute
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	cache       cache.Cache
}

// NewUserUseCase создает новый экземпляр пользовательского сервиса.
// cache может быть nil; тогда путь чтения профиля работает без кэша.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	profileCache cache.Cache,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		cache:       profileCache,
	}
}

// Register хэширует пароль команды и создает пользователя одним обращением
// к репозиторию. Проверки уникальности выполняет слой хранения.
func (u *UserUseCaseImpl) Register(ctx context.Context, command *dto.CreateUserDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", command.Username))
	log.Debug(ctx, msgStartRegistration)

	hash, err := u.passwordSvc.Hash(ctx, command.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	hashed := *command
	hashed.Password = hash

	user, err := u.userRepo.Create(ctx, &hashed)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", user.ID))
	return user, nil
}

// Login аутентифицирует пользователя по почте и паролю. Несуществующая
// почта и неверный пароль дают один и тот же ответ.
func (u *UserUseCaseImpl) Login(ctx context.Context, command *dto.LoginUserDTO) (*services.AuthSession, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoginAttempt)

	user, err := u.userRepo.FindByEmail(ctx, command.Email)
	if err != nil {
		if apperr.StatusOf(err) == http.StatusNotFound {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, apperr.Unauthorized(MsgInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, err
	}

	ok, err := u.passwordSvc.Verify(ctx, command.Password, user.Password)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPass, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPass, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	token, expiresAt, err := u.tokenSvc.Sign(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrSigningToken, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return &services.AuthSession{User: user, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// GetUsers возвращает всех активных пользователей.
func (u *UserUseCaseImpl) GetUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.GetAll(ctx)
}

// GetUserByID возвращает профиль пользователя, сначала пробуя кэш.
// Ошибки кэша не фатальны: чтение продолжается из репозитория.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.Int64("userID", id))

	key := fmt.Sprintf(userCacheKeyFormat, id)
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, key)
		switch {
		case err == nil:
			var user entities.User
			if unmarshalErr := json.Unmarshal([]byte(cached), &user); unmarshalErr == nil {
				log.Debug(ctx, msgProfileCacheHit)
				return &user, nil
			}
		case !errors.Is(err, cache.ErrCacheMiss):
			log.Warn(ctx, msgErrCacheRead, zap.Error(err))
		}
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if payload, marshalErr := json.Marshal(user); marshalErr == nil {
			if err := u.cache.Set(ctx, key, string(payload), userCacheTTL); err != nil {
				log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
			} else {
				log.Debug(ctx, msgProfileCached)
			}
		}
	}

	return user, nil
}

// UpdateUsername меняет имя пользователя и сбрасывает его кэш профиля.
func (u *UserUseCaseImpl) UpdateUsername(ctx context.Context, command *dto.UpdateUsernameDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUsername), zap.Int64("userID", command.ID))

	user, err := u.userRepo.UpdateUsername(ctx, command)
	if err != nil {
		return nil, err
	}

	u.invalidateProfile(ctx, command.ID)
	log.Info(ctx, msgUsernameUpdated)
	return user, nil
}

// UpdatePassword хэширует новый пароль и сохраняет его одним обращением
// к репозиторию.
func (u *UserUseCaseImpl) UpdatePassword(ctx context.Context, command *dto.UpdatePasswordDTO) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdatePassword), zap.Int64("userID", command.ID))

	hash, err := u.passwordSvc.Hash(ctx, command.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	hashed := *command
	hashed.Password = hash

	user, err := u.userRepo.UpdatePassword(ctx, &hashed)
	if err != nil {
		return nil, err
	}

	u.invalidateProfile(ctx, command.ID)
	log.Info(ctx, msgPasswordUpdated)
	return user, nil
}

// DeleteUser мягко удаляет пользователя и сбрасывает его кэш профиля.
func (u *UserUseCaseImpl) DeleteUser(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.Int64("userID", id))

	user, err := u.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.invalidateProfile(ctx, id)
	log.Info(ctx, msgUserDeleted)
	return user, nil
}

func (u *UserUseCaseImpl) invalidateProfile(ctx context.Context, id int64) {
	if u.cache == nil {
		return
	}
	key := fmt.Sprintf(userCacheKeyFormat, id)
	if err := u.cache.Delete(ctx, key); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrCacheInvalidate, zap.Error(err))
	}
}
