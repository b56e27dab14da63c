// Package comments содержит HTTP обработчики операций с комментариями.
package comments

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
	LogHandlerCreateComment = "comment handler: create comment"
	LogHandlerGetComments   = "comment handler: get comments"
	LogHandlerDeleteComment = "comment handler: delete comment"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики комментариев.
type Handler struct {
	commentUseCase api.CommentUseCase
}

// NewHandler создает новый экземпляр обработчика комментариев.
func NewHandler(commentUseCase api.CommentUseCase) *Handler {
	return &Handler{commentUseCase: commentUseCase}
}

func parseIDParam(ctx fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// CreateComment обрабатывает создание комментария к публикации. Автор
// берется из проверенного токена, публикация из пути.
func (h *Handler) CreateComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateComment)

	var props dto.CreateCommentProps
	if err := ctx.Bind().JSON(&props); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.SendMessage(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	props.BlogID = parseIDParam(ctx, "blog_id")
	props.AuthorID, _ = ctx.Locals("userID").(int64)

	command, factoryErr := dto.NewCreateCommentDTO(props)
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	comment, err := h.commentUseCase.Create(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(comment)
}

// GetComments возвращает комментарии публикации.
func (h *Handler) GetComments(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerGetComments)

	blogID := parseIDParam(ctx, "blog_id")
	if blogID == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgBlogIDInvalid)
	}

	comments, err := h.commentUseCase.GetByBlogID(requestCtx, blogID)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(comments)
}

// DeleteComment мягко удаляет собственный комментарий. Автор берется из
// проверенного токена.
func (h *Handler) DeleteComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerDeleteComment)

	id := parseIDParam(ctx, "comment_id")
	if id == 0 {
		return respond.SendMessage(ctx, http.StatusBadRequest, dto.MsgIDInvalid)
	}

	authorID, ok := ctx.Locals("userID").(int64)
	if !ok || authorID == 0 {
		return respond.SendMessage(ctx, http.StatusUnauthorized, "invalid or expired token")
	}

	comment, err := h.commentUseCase.Delete(requestCtx, id, authorID)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(comment)
}
