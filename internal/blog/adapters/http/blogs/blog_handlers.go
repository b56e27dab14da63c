// Package blogs содержит HTTP обработчики операций с публикациями.
package blogs

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
	LogHandlerCreateBlog = "blog handler: create blog"
	LogHandlerGetBlogs   = "blog handler: get blogs"
	LogHandlerGetBlog    = "blog handler: get blog"
	LogHandlerUpdateBlog = "blog handler: update blog"
	LogHandlerDeleteBlog = "blog handler: delete blog"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики публикаций.
type Handler struct {
	blogUseCase api.BlogUseCase
}

// NewHandler создает новый экземпляр обработчика публикаций.
func NewHandler(blogUseCase api.BlogUseCase) *Handler {
	return &Handler{blogUseCase: blogUseCase}
}

func parseIDParam(ctx fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// CreateBlog обрабатывает создание публикации.
func (h *Handler) CreateBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateBlog)

	var props dto.CreateBlogProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	command, factoryErr := dto.NewCreateBlogDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	blog, err := h.blogUseCase.Create(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(blog)
}

// GetBlogs возвращает все активные публикации.
func (h *Handler) GetBlogs(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetBlogs)

	blogs, err := h.blogUseCase.GetAll(requestCtx)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(blogs)
}

// GetBlog возвращает публикацию с рубриками.
func (h *Handler) GetBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetBlog)

	id := parseIDParam(ctx, "blog_id")
	if id == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgIDInvalid)
	}

	blog, err := h.blogUseCase.GetByID(requestCtx, id)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(blog)
}

// UpdateBlog обрабатывает обновление публикации.
func (h *Handler) UpdateBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateBlog)

	var props dto.UpdateBlogProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	props.BlogID = parseIDParam(ctx, "blog_id")

	command, factoryErr := dto.NewUpdateBlogDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	blog, err := h.blogUseCase.Update(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(blog)
}

// DeleteBlog мягко удаляет публикацию.
func (h *Handler) DeleteBlog(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDeleteBlog)

	id := parseIDParam(ctx, "blog_id")
	if id == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgIDInvalid)
	}

	blog, err := h.blogUseCase.Delete(requestCtx, id)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(blog)
}
