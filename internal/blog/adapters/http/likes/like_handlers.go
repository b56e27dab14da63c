// Package likes содержит HTTP обработчик переключения лайков.
package likes

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"goblognest/internal/blog/adapters/http/respond"
	"goblognest/internal/blog/dto"
	"goblognest/internal/blog/ports/api"
	"goblognest/pkg/logger"
)

// LogHandlerToggleLike - метка лога обработчика переключения.
const LogHandlerToggleLike = "like handler: toggle like"

// Handler содержит HTTP обработчики лайков.
type Handler struct {
	likeUseCase api.LikeUseCase
}

// NewHandler создает новый экземпляр обработчика лайков.
func NewHandler(likeUseCase api.LikeUseCase) *Handler {
	return &Handler{likeUseCase: likeUseCase}
}

// ToggleLike переключает лайк текущего пользователя на публикации.
func (h *Handler) ToggleLike(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Info(requestCtx, LogHandlerToggleLike)

	blogID, _ := strconv.ParseInt(ctx.Params("blog_id"), 10, 64)
	userID, _ := ctx.Locals("userID").(int64)

	command, factoryErr := dto.NewCreateDeleteLikeDTO(dto.CreateDeleteLikeProps{
		UserID: userID,
		BlogID: blogID,
	})
	if factoryErr != nil {
		return respond.SendError(ctx, factoryErr)
	}

	result, err := h.likeUseCase.Toggle(requestCtx, command)
	if err != nil {
		return respond.SendError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(result)
}
