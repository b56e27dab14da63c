// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"goblognest/pkg/logger"
)

// HeaderRequestID - заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// LocalsRequestID - ключ идентификатора запроса в locals.
const LocalsRequestID = "requestID"

// NewRequestIDMiddleware присваивает каждому запросу идентификатор:
// пришедший от клиента либо сгенерированный. Идентификатор возвращается
// в ответном заголовке.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.Locals(LocalsRequestID, requestID)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
