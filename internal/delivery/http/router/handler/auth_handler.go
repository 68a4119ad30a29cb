// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/http/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves sign up and login.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the user registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	input := new(usecase.SignUpInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusCreated, output)
}

// Login handles the user login request. It is routed for both GET and POST.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, output)
}

// bindAndValidate decodes the request into input and runs the registered validator.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(input); err != nil {
		return err
	}

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
