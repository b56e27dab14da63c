// Package respond переводит ошибки прикладного слоя в HTTP ответы.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"goblognest/internal/blog/domain/apperr"
	"goblognest/internal/blog/dto"
	"goblognest/pkg/logger"
)

// ErrorInternal отдается наружу вместо деталей неожиданных ошибок.
const ErrorInternal = "Internal Server Error"

// SendError переводит ошибку прикладного слоя в HTTP ответ. Отказ фабрики
// DTO всегда отвечает 400 и сериализуется как есть; нарушение
// бизнес-правила несет собственный статус; все остальное скрывается за 500.
func SendError(ctx fiber.Ctx, err error) error {
	var factoryErr *dto.FactoryError
	if errors.As(err, &factoryErr) {
		if jsonErr := ctx.Status(http.StatusBadRequest).JSON(factoryErr); jsonErr != nil {
			return fmt.Errorf("error sending validation response: %w", jsonErr)
		}
		return nil
	}

	if appErr, ok := apperr.FromError(err); ok {
		if jsonErr := ctx.Status(appErr.Status).JSON(appErr); jsonErr != nil {
			return fmt.Errorf("error sending error response: %w", jsonErr)
		}
		return nil
	}

	requestCtx := ctx.Context()
	logger.Log(requestCtx).Error(requestCtx, "unexpected error", zap.Error(err))
	if jsonErr := ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": ErrorInternal,
	}); jsonErr != nil {
		return fmt.Errorf("error sending internal error response: %w", jsonErr)
	}
	return nil
}

// SendMessage отвечает единственным сообщением об ошибке с заданным статусом.
func SendMessage(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
