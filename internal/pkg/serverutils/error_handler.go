package serverutils

import (
	"medichat-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service-level errors escaping a
// handler into the HTTP taxonomy. Handlers that already answered keep
// their response untouched.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		code := apperror.StatusCode(err)
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
