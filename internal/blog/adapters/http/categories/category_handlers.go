// Package categories содержит HTTP обработчики операций с рубриками.
package categories

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/internal/blog/adapters/http/respond"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateCategory = "category handler: create category"
	LogHandlerGetCategories  = "category handler: get categories"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики рубрик.
type Handler struct {
	categoryUseCase api.CategoryUseCase
}

// NewHandler создает новый экземпляр обработчика рубрик.
func NewHandler(categoryUseCase api.CategoryUseCase) *Handler {
	return &Handler{categoryUseCase: categoryUseCase}
}

// CreateCategory обрабатывает создание рубрики.
func (h *Handler) CreateCategory(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateCategory)

	var props dto.CreateCategoryProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	command, factoryErr := dto.NewCreateCategoryDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	category, err := h.categoryUseCase.Create(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(category)
}

// GetCategories возвращает все активные рубрики.
func (h *Handler) GetCategories(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetCategories)

	categories, err := h.categoryUseCase.GetAll(requestCtx)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(categories)
}
