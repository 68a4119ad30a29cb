package middleware

import (
	"strings"

	deliverycontext "bookstore/internal/delivery/context"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens to users.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects the request unless it carries a valid bearer token for
// an existing user, and stores that user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("bearer token is empty")
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}
