package serverutils

import (
	"errors"

	"lifehub-be/internal/apperror"
	"lifehub-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into the standard
// error envelope. Validation -> 400, NotFound -> 404, Forbidden -> 403,
// everything else -> 500 with a log entry.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := fiber.StatusInternalServerError
		switch apperror.KindOf(err) {
		case apperror.KindValidation:
			status = fiber.StatusBadRequest
		case apperror.KindNotFound:
			status = fiber.StatusNotFound
		case apperror.KindForbidden:
			status = fiber.StatusForbidden
		default:
			if log != nil {
				log.Error("http", "unhandled error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": err.Error(),
				})
			}
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
