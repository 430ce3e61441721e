package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tableorder/internal/generated/servers"
	"tableorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponder maps the error taxonomy onto status codes. Anything that is
// not a validation, not found or conflict error is a storage failure and is
// answered with a generic message unless debug is on.
type errorResponder struct {
	logger *slog.Logger
	debug  bool
}

func (r errorResponder) respond(ctx echo.Context, err error) error {
	status := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		r.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		if !r.debug {
			message = "Internal server error"
		}
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func statusOf(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
