package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/worldroam/countries-api/internal/core/domain"
)

// errorResponse is the failure half of the API's JSON envelope.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their contractual status codes and messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent envelope {"success": false, "message": "<msg>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes. Duplicate email and
	// favorites conflicts are 400 by the API's established convention, not
	// 409. Auth failures never reveal which check failed.
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrMissingCountryCode),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrAlreadyFavorite),
		errors.Is(err, domain.ErrNotFavorite):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrNotAuthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, domain.ErrNotAuthorized.Error()
	case errors.Is(err, domain.ErrCountryNotFound):
		return http.StatusNotFound, domain.ErrCountryNotFound.Error()
	case errors.Is(err, domain.ErrUpstreamFailure):
		return http.StatusBadGateway, "Country data service unavailable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
