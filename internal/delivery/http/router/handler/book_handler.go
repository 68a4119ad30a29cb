package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/delivery/http/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler serves the /books resource. Every route requires authentication.
type BookHandler struct {
	uc     usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of books, filtered by ?keyword= and paged by ?page=.
func (h *BookHandler) List(c echo.Context) error {
	input := &usecase.BookQueryInput{
		Keyword: c.QueryParam("keyword"),
		Page:    c.QueryParam("page"),
	}

	books, err := h.uc.FindAll(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, books)
}

// Create stores a book owned by the authenticated user.
func (h *BookHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("no authenticated user on context")
	}

	input := new(usecase.CreateBookInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	book, err := h.uc.Create(c.Request().Context(), input, user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusCreated, book)
}

// Get returns a single book.
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.uc.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, book)
}

// Update applies a partial update and returns the updated book.
func (h *BookHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateBookInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	book, err := h.uc.UpdateByID(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, book)
}

// Delete removes a book and returns it.
func (h *BookHandler) Delete(c echo.Context) error {
	book, err := h.uc.DeleteByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Payload(c, http.StatusOK, book)
}
