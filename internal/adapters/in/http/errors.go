package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/delivery"

	"github.com/labstack/echo/v4"
)

// statusOf maps delivery error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, delivery.ErrDuplicateCustomer), errors.Is(err, delivery.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, delivery.ErrInvalidOrder), errors.Is(err, delivery.ErrUnknownCustomer):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrAmbiguousItem):
		return http.StatusUnprocessableEntity
	case errors.Is(err, delivery.ErrValueIsInvalid), errors.Is(err, delivery.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
