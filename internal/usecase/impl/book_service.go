package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"bookstore/config"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultPageSize is the number of books per page when none is configured.
const DefaultPageSize = 2

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo    repository.BookRepository
	idValidator service.IDValidator
	pageSize    int
	logger      *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo    repository.BookRepository
	IDValidator service.IDValidator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	pageSize := DefaultPageSize
	if params.Config != nil && params.Config.Books != nil && params.Config.Books.PageSize > 0 {
		pageSize = params.Config.Books.PageSize
	}

	return &bookService{
		bookRepo:    params.BookRepo,
		idValidator: params.IDValidator,
		pageSize:    pageSize,
		logger:      params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAll returns one page of books, optionally filtered by a title keyword.
func (srv *bookService) FindAll(ctx context.Context, input *usecase.BookQueryInput) ([]*entity.Book, error) {
	var keyword, rawPage string
	if input != nil {
		keyword, rawPage = input.Keyword, input.Page
	}

	page := parsePage(rawPage)
	query := repository.BookQuery{
		Keyword: keyword,
		Limit:   int64(srv.pageSize),
		Offset:  pageOffset(page, srv.pageSize),
	}

	books, err := srv.bookRepo.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	if books == nil {
		books = []*entity.Book{}
	}

	srv.log(ctx).Debug("Listed books", slog.String("keyword", keyword), slog.Int("page", page), slog.Int("count", len(books)))

	return books, nil
}

// Create stores a new book owned by the given user.
func (srv *bookService) Create(ctx context.Context, input *usecase.CreateBookInput, user *entity.User) (*entity.Book, error) {
	if user == nil || user.ID == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("book owner is required")
	}

	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	book := &entity.Book{
		User:        user.ID,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.String("bookID", book.ID), slog.String("userID", user.ID))

	return book, nil
}

// FindByID returns a single book.
func (srv *bookService) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	if err := srv.checkID(id); err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBookError(err, "failed to find book")
	}

	return book, nil
}

// UpdateByID applies a partial update and returns the updated book.
func (srv *bookService) UpdateByID(ctx context.Context, id string, input *usecase.UpdateBookInput) (*entity.Book, error) {
	if err := srv.checkID(id); err != nil {
		return nil, err
	}

	patch, err := buildPatch(input)
	if err != nil {
		return nil, err
	}

	// Nothing to change: report the current document and leave updatedAt alone.
	if patch.IsEmpty() {
		book, err := srv.bookRepo.FindByID(ctx, id)
		if err != nil {
			return nil, mapBookError(err, "failed to update book")
		}

		return book, nil
	}

	book, err := srv.bookRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, mapBookError(err, "failed to update book")
	}

	srv.log(ctx).Info("Book updated", slog.String("bookID", id))

	return book, nil
}

// DeleteByID removes a book and returns it as it was before deletion.
func (srv *bookService) DeleteByID(ctx context.Context, id string) (*entity.Book, error) {
	if err := srv.checkID(id); err != nil {
		return nil, err
	}

	book, err := srv.bookRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, mapBookError(err, "failed to delete book")
	}

	srv.log(ctx).Info("Book deleted", slog.String("bookID", id))

	return book, nil
}

func (srv *bookService) checkID(id string) error {
	if !srv.idValidator.Valid(id) {
		return domainerrors.ErrInvalidBookID.WrapMessage("malformed book id " + strconv.Quote(id))
	}

	return nil
}

func mapBookError(err error, message string) error {
	if errors.Is(err, repository.ErrBookNotFound) {
		return domainerrors.ErrBookNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}

// parsePage reads a 1-based page number; anything unusable means the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// pageOffset returns the number of books to skip. Offsets that do not fit in
// int64 saturate, which yields an empty page like any page past the end.
func pageOffset(page, pageSize int) int64 {
	skipped, size := int64(page-1), int64(pageSize)
	if skipped > 0 && skipped > math.MaxInt64/size {
		return math.MaxInt64
	}

	return skipped * size
}

func validateCreateInput(input *usecase.CreateBookInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("book data is required")
	}
	if input.Price == nil {
		return domainerrors.ErrValidationFailed.WithDetails("price is required")
	}

	return validateBookFields(*input.Price, input.Category)
}

func buildPatch(input *usecase.UpdateBookInput) (*entity.BookPatch, error) {
	if input == nil {
		return &entity.BookPatch{}, nil
	}

	if input.Price != nil && *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category must be one of the known categories")
	}

	return &entity.BookPatch{
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	}, nil
}

func validateBookFields(price float64, category entity.Category) error {
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if !category.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("category must be one of the known categories")
	}

	return nil
}
