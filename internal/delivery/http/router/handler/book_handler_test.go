package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withUser(user *entity.User) func(c echo.Context) {
	return func(c echo.Context) {
		deliverycontext.SetUser(c, user)
	}
}

func withID(id string) func(c echo.Context) {
	return func(c echo.Context) {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
}

func TestBookHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockBookUsecase(t)
	uc.EXPECT().
		FindAll(mock.Anything, &usecase.BookQueryInput{Keyword: "dune", Page: "2"}).
		Return([]*entity.Book{{ID: "b1", Title: "Dune"}}, nil)
	h := NewBookHandler(uc, newTestLogger())

	rec := serve(t, newTestEcho(), h.List, http.MethodGet, "/books?keyword=dune&page=2", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var books []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "b1", books[0]["_id"])
}

func TestBookHandler_List_EmptyPageIsArray(t *testing.T) {
	uc := mockUsecase.NewMockBookUsecase(t)
	uc.EXPECT().FindAll(mock.Anything, mock.Anything).Return([]*entity.Book{}, nil)
	h := NewBookHandler(uc, newTestLogger())

	rec := serve(t, newTestEcho(), h.List, http.MethodGet, "/books?page=50", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBookHandler_Create(t *testing.T) {
	user := &entity.User{ID: "user-1"}

	t.Run("created with owner from context", func(t *testing.T) {
		uc := mockUsecase.NewMockBookUsecase(t)
		uc.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateBookInput) bool {
				return in.Title == "Dune" && in.Price != nil && *in.Price == 0 && in.Category == entity.CategoryFantasy
			}), user).
			Return(&entity.Book{ID: "b1", User: "user-1", Title: "Dune"}, nil)
		h := NewBookHandler(uc, newTestLogger())

		body := `{"title":"Dune","author":"Herbert","description":"Spice","price":0,"category":"Fantasy","user":"someone-else"}`
		rec := serve(t, newTestEcho(), h.Create, http.MethodPost, "/books", body, withUser(user))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user":"user-1"`)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"unknown category", `{"title":"T","author":"A","description":"D","price":1,"category":"Poetry"}`},
		{"negative price", `{"title":"T","author":"A","description":"D","price":-1,"category":"Crime"}`},
		{"missing price", `{"title":"T","author":"A","description":"D","category":"Crime"}`},
		{"missing title", `{"author":"A","description":"D","price":1,"category":"Crime"}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockBookUsecase(t)
			h := NewBookHandler(uc, newTestLogger())

			rec := serve(t, newTestEcho(), h.Create, http.MethodPost, "/books", tt.body, withUser(user))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}

	t.Run("no user on context", func(t *testing.T) {
		uc := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(uc, newTestLogger())

		rec := serve(t, newTestEcho(), h.Create, http.MethodPost, "/books", `{}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBookHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"invalid id", domainerrors.ErrInvalidBookID.WrapMessage("bad"), http.StatusBadRequest},
		{"not found", domainerrors.ErrBookNotFound.WrapMessage("gone"), http.StatusNotFound},
		{"store failure", errors.New("socket closed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockBookUsecase(t)
			var book *entity.Book
			if tt.err == nil {
				book = &entity.Book{ID: "b1"}
			}
			uc.EXPECT().FindByID(mock.Anything, "b1").Return(book, tt.err)
			h := NewBookHandler(uc, newTestLogger())

			rec := serve(t, newTestEcho(), h.Get, http.MethodGet, "/books/b1", "", withID("b1"))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "socket closed")
			}
		})
	}
}

func TestBookHandler_Update(t *testing.T) {
	t.Run("partial body", func(t *testing.T) {
		uc := mockUsecase.NewMockBookUsecase(t)
		uc.EXPECT().
			UpdateByID(mock.Anything, "b1", mock.MatchedBy(func(in *usecase.UpdateBookInput) bool {
				return in.Title != nil && *in.Title == "New" && in.Author == nil && in.Price == nil
			})).
			Return(&entity.Book{ID: "b1", Title: "New"}, nil)
		h := NewBookHandler(uc, newTestLogger())

		rec := serve(t, newTestEcho(), h.Update, http.MethodPut, "/books/b1", `{"title":"New"}`, withID("b1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"New"`)
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(uc, newTestLogger())

		rec := serve(t, newTestEcho(), h.Update, http.MethodPut, "/books/b1", `{"category":"Poetry"}`, withID("b1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	uc := mockUsecase.NewMockBookUsecase(t)
	uc.EXPECT().DeleteByID(mock.Anything, "b1").Return(&entity.Book{ID: "b1", Title: "Gone"}, nil)
	h := NewBookHandler(uc, newTestLogger())

	rec := serve(t, newTestEcho(), h.Delete, http.MethodDelete, "/books/b1", "", withID("b1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Gone"`)
}
