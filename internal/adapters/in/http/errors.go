package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pointofsale/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler returns an echo.HTTPErrorHandler that renders every error
// as an Error body. Domain errors map to 404 or 400; anything unrecognized is
// logged and reported as 500 without its details.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := statusFor(err)
		if code == http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		}

		body := Error{Code: int32(code), Message: message}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, body)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}

func statusFor(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, trimMessage(fmt.Sprint(httpErr.Message))
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, trimMessage(err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, trimMessage(err.Error())
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func trimMessage(msg string) string {
	return strings.TrimSpace(strings.ReplaceAll(msg, "\n", " "))
}
