package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"expenses/internal/auth"
	"expenses/internal/service"
	"expenses/internal/validation"
)

// httpError is the body shape for HTTP-exception-class errors:
// {"error": {"code": 401, "name": "Unauthorized", "description": "..."}}.
type httpError struct {
	Error httpErrorBody `json:"error"`
}

type httpErrorBody struct {
	Code        int    `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// validationError is the body shape for validation failures:
// {"errors": {"field": ["message", ...]}}.
type validationError struct {
	Errors validation.Errors `json:"errors"`
}

// errorHandler translates every error escaping a handler or middleware into
// its HTTP status and JSON body. Nothing is retried or silently recovered;
// unrecognized errors become opaque 500s and are logged with their cause.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		if jerr := c.JSON(http.StatusBadRequest, validationError{Errors: verrs}); jerr != nil {
			slog.Error("failed to write error response", "error", jerr)
		}
		return
	}

	code, description := statusOf(err)
	if code == http.StatusInternalServerError {
		slog.Error("internal error", "method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	}

	body := httpError{Error: httpErrorBody{
		Code:        code,
		Name:        http.StatusText(code),
		Description: description,
	}}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

// statusOf maps service and auth errors onto the error taxonomy:
// Unauthorized (401), token-class mismatch (422), Forbidden (403),
// NotFound (404). 403 and 404 are deliberately distinct so existence is
// not hidden from non-owners.
func statusOf(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, service.ErrIncorrectCredentials):
		return http.StatusUnauthorized, userMessage(err)

	case errors.Is(err, auth.ErrNotAccessToken),
		errors.Is(err, auth.ErrNotRefreshToken):
		return http.StatusUnprocessableEntity, userMessage(err)

	case errors.Is(err, service.ErrNotExpenseOwner):
		return http.StatusForbidden, service.ErrNotExpenseOwner.Error()

	case errors.Is(err, service.ErrExpenseNotFound):
		return http.StatusNotFound, service.ErrExpenseNotFound.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, "Internal server error"
}

// userMessage unwraps to the sentinel's message so wrapped details
// (signature mismatch, expiry time) never leak into responses.
func userMessage(err error) string {
	for _, sentinel := range []error{
		service.ErrIncorrectCredentials,
		auth.ErrNotAccessToken,
		auth.ErrNotRefreshToken,
		auth.ErrMissingToken,
		auth.ErrInvalidToken,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
