package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

// serve runs h against a JSON request and renders any returned error the way
// the server would.
func serve(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, target, body string, prepare func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if prepare != nil {
		prepare(c)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
