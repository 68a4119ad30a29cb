// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// --- Output DTOs ---

// TokenOutput carries the bearer token issued on sign up or login.
type TokenOutput struct {
	Token string `json:"token"`
}

// AuthUsecase defines registration, login and token authentication.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*TokenOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
