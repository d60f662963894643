package http

import (
	"errors"
	"net/http"

	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto HTTP status codes:
// validation failures are 400, missing objects 404, duplicate numbers 409
// and invalid lifecycle transitions 422. Anything unrecognized is a 500
// with a generic message so internals do not leak to callers.
func writeError(ctx echo.Context, err error) error {
	var code int
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUniquenessViolation):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// writeBadRequest returns a 400 with the given message, used for malformed
// bodies and path parameters before a command is even constructed.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
