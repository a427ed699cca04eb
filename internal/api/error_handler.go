package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authgate/accounts-service/internal/api/handler"
	"github.com/authgate/accounts-service/internal/api/metrics"
	"github.com/authgate/accounts-service/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to HTTP status codes and the account messages.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders the envelope {"status": "FAIL", "message": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, kind := resolveError(err, log, c)
		metrics.FailuresTotal.WithLabelValues(kind).Inc()
		_ = c.JSON(code, handler.Fail(msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), "http"
	}

	kind := string(domain.KindOf(err))
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputMessage(err), kind
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, handler.MsgUserExists, kind
	case errors.Is(err, domain.ErrSignupInProgress):
		return http.StatusConflict, handler.MsgSignupInProgress, kind
	case errors.Is(err, domain.ErrAdminSelfGrant):
		return http.StatusForbidden, handler.MsgAdminSelfGrant, kind
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, handler.MsgUserNotFound, kind
	case errors.Is(err, domain.ErrIncorrectPassword):
		return http.StatusUnauthorized, handler.MsgIncorrectPassword, kind
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, handler.MsgLoginFirst, kind
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusForbidden, handler.MsgNotAllowed, kind
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.MsgSomethingWentWrong, kind
}

func invalidInputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	if msg == "" || msg == domain.ErrInvalidInput.Error() {
		return "invalid payload"
	}
	return msg
}
