package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/pkg/logger"
)

// MsgPanicResponse - тело ответа, отдаваемое клиенту после паники.
const MsgPanicResponse = "Internal Server Error"

// NewRecoveryMiddleware перехватывает панику обработчика, пишет стек в
// лог и отвечает клиенту 500 без деталей сбоя.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				log := logger.Log(requestCtx)
				log.Error(requestCtx, "panic recovered",
					zap.String("panic", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": MsgPanicResponse,
				}); err != nil {
					log.Error(requestCtx, "failed to respond after panic", zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
