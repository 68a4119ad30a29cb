package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"
)

// ErrBookNotFound is returned when no book matches the given identifier.
var ErrBookNotFound = errors.New("book not found")

// BookQuery selects a page of books. An empty Keyword matches every book.
type BookQuery struct {
	Keyword string // Case-insensitive substring of the title.
	Limit   int64
	Offset  int64
}

// BookRepository defines the persistence operations for books.
// Identifiers are expected to be validated by the caller.
type BookRepository interface {
	Find(ctx context.Context, query BookQuery) ([]*entity.Book, error)
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id string) (*entity.Book, error)

	// UpdateByID applies the patch and returns the document after the update.
	UpdateByID(ctx context.Context, id string, patch *entity.BookPatch) (*entity.Book, error)

	// DeleteByID removes the book and returns the deleted document.
	DeleteByID(ctx context.Context, id string) (*entity.Book, error)
}
