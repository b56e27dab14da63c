package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/pkg/logger"
)

const errCtxHandlingRequest = "handling request"

// NewLoggerMiddleware логирует каждый HTTP запрос: одну запись на входе
// и одну на выходе со статусом и временем обработки.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.String("ip", ctx.IP()),
		)
		if requestID, ok := ctx.Locals(LocalsRequestID).(string); ok {
			log = log.With(zap.String("requestID", requestID))
		}

		log.Debug(requestCtx, "request started")

		err := ctx.Next()

		fields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Error(requestCtx, "request failed", append(fields, zap.Error(err))...)
			return fmt.Errorf("%s: %w", errCtxHandlingRequest, err)
		}

		log.Info(requestCtx, "request completed", fields...)
		return nil
	}
}
