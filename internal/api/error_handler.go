package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nexospark/website-api/internal/core/domain"
)

// errorResponse is the canonical error envelope: status is "fail" for
// client errors and "error" for server errors, message is human-readable.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes in one place.
//   - Logs unexpected errors internally without leaking details.
//   - Renders the consistent JSON error envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		status := "fail"
		if code >= http.StatusInternalServerError {
			status = "error"
		}
		_ = c.JSON(code, errorResponse{Status: status, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest, err.Error()
	case domain.KindConflict:
		return http.StatusConflict, err.Error()
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized, err.Error()
	case domain.KindForbidden:
		return http.StatusForbidden, err.Error()
	case domain.KindNotFound:
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
