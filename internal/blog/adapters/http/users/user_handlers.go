// Package users содержит HTTP обработчики пользовательских операций.
package users

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/internal/blog/adapters/http/respond"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister       = "user handler: register"
	LogHandlerLogin          = "user handler: login"
	LogHandlerGetUsers       = "user handler: get users"
	LogHandlerGetUser        = "user handler: get user"
	LogHandlerUpdateUsername = "user handler: update username"
	LogHandlerUpdatePassword = "user handler: update password"
	LogHandlerDeleteUser     = "user handler: delete user"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики пользовательских операций.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{userUseCase: userUseCase}
}

// parseIDParam разбирает числовой параметр пути; нечисловое значение
// превращается в ноль и отклоняется предусловием фабрики или обработчика.
func parseIDParam(ctx fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var props dto.CreateUserProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	command, factoryErr := dto.NewCreateUserDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	user, err := h.userUseCase.Register(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(user)
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var props dto.LoginUserProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	command, factoryErr := dto.NewLoginUserDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	session, err := h.userUseCase.Login(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(session)
}

// GetUsers возвращает всех активных пользователей.
func (h *Handler) GetUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetUsers)

	users, err := h.userUseCase.GetUsers(requestCtx)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(users)
}

// GetUser возвращает профиль пользователя.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetUser)

	id := parseIDParam(ctx, "user_id")
	if id == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgIDInvalid)
	}

	user, err := h.userUseCase.GetUserByID(requestCtx, id)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(user)
}

// UpdateUsername обрабатывает смену имени пользователя.
func (h *Handler) UpdateUsername(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateUsername)

	var props dto.UpdateUsernameProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	props.ID = parseIDParam(ctx, "user_id")

	command, factoryErr := dto.NewUpdateUsernameDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	user, err := h.userUseCase.UpdateUsername(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(user)
}

// UpdatePassword обрабатывает смену пароля.
func (h *Handler) UpdatePassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdatePassword)

	var props dto.UpdatePasswordProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	props.ID = parseIDParam(ctx, "user_id")

	command, factoryErr := dto.NewUpdatePasswordDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	user, err := h.userUseCase.UpdatePassword(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(user)
}

// DeleteUser мягко удаляет пользователя.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDeleteUser)

	id := parseIDParam(ctx, "user_id")
	if id == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgIDInvalid)
	}

	user, err := h.userUseCase.DeleteUser(requestCtx, id)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(user)
}
