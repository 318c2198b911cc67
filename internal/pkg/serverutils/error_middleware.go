package serverutils

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into the
// BaseResponse envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := classify(err)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func classify(err error) (int, string) {
	var fiberErr *fiber.Error
	var validationErr *ValidationError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Error()
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return fiber.StatusBadRequest, "malformed request body: " + err.Error()
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest, err.Error()
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, ErrUpstream):
		return fiber.StatusBadGateway, err.Error()
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}
