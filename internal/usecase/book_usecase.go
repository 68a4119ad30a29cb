package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
)

// BookQueryInput holds the raw listing parameters from the query string.
type BookQueryInput struct {
	Keyword string `query:"keyword"`
	Page    string `query:"page"`
}

// CreateBookInput defines a new book. The owner is never taken from the payload.
type CreateBookInput struct {
	Title       string          `json:"title" validate:"required"`
	Author      string          `json:"author" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       *float64        `json:"price" validate:"required,gte=0"`
	Category    entity.Category `json:"category" validate:"required,bookcategory"`
}

// UpdateBookInput is a partial update; nil fields are left unchanged.
type UpdateBookInput struct {
	Title       *string          `json:"title" validate:"omitempty,min=1"`
	Author      *string          `json:"author" validate:"omitempty,min=1"`
	Description *string          `json:"description" validate:"omitempty,min=1"`
	Price       *float64         `json:"price" validate:"omitempty,gte=0"`
	Category    *entity.Category `json:"category" validate:"omitempty,bookcategory"`
}

// BookUsecase defines CRUD and search on books.
type BookUsecase interface {
	FindAll(ctx context.Context, input *BookQueryInput) ([]*entity.Book, error)
	Create(ctx context.Context, input *CreateBookInput, user *entity.User) (*entity.Book, error)
	FindByID(ctx context.Context, id string) (*entity.Book, error)
	UpdateByID(ctx context.Context, id string, input *UpdateBookInput) (*entity.Book, error)
	DeleteByID(ctx context.Context, id string) (*entity.Book, error)
}
