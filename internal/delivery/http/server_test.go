package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/config"
	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router"
	"bookstore/internal/delivery/http/router/handler"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type serverFixtures struct {
	echo   *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	bookUC *mockUsecase.MockBookUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)
	bookUC := mockUsecase.NewMockBookUsecase(t)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := newEcho(HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(authUC, logger),
			BookHandler:    handler.NewBookHandler(bookUC, logger),
			AuthMiddleware: middleware.NewAuthMiddleware(authUC),
		},
		ErrorMiddleware:     middleware.NewErrorMiddleware(logger),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(logger),
		LoggerMiddleware:    middleware.NewLoggerMiddleware(logger, cfg),
	})

	return serverFixtures{echo: e, authUC: authUC, bookUC: bookUC}
}

func (f serverFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_BooksRequireAuthentication(t *testing.T) {
	routes := []struct{ method, target string }{
		{http.MethodGet, "/books"},
		{http.MethodPost, "/books"},
		{http.MethodGet, "/books/64b7f0c2a1b2c3d4e5f60718"},
		{http.MethodPut, "/books/64b7f0c2a1b2c3d4e5f60718"},
		{http.MethodDelete, "/books/64b7f0c2a1b2c3d4e5f60718"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.target, func(t *testing.T) {
			f := createTestServer(t)

			rec := f.do(r.method, r.target, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestServer_SignUpThenCreateBook(t *testing.T) {
	f := createTestServer(t)
	user := &entity.User{ID: "64b7f0c2a1b2c3d4e5f60001", Name: "Ann"}

	f.authUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(&usecase.TokenOutput{Token: "tok"}, nil)
	rec := f.do(http.MethodPost, "/auth/signup", `{"name":"Ann","email":"ann@x.io","password":"secret1"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())

	f.authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil)
	f.bookUC.EXPECT().Create(mock.Anything, mock.Anything, user).
		Return(&entity.Book{ID: "b1", User: user.ID, Title: "Dune", Category: entity.CategoryFantasy}, nil)

	rec = f.do(http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","description":"Spice","price":10,"category":"Fantasy"}`, "tok")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user":"64b7f0c2a1b2c3d4e5f60001"`)
}

func TestServer_LoginAcceptsGetAndPost(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			f := createTestServer(t)
			f.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ann@x.io", Password: "secret1"}).
				Return(&usecase.TokenOutput{Token: "tok"}, nil)

			rec := f.do(method, "/auth/login", `{"email":"ann@x.io","password":"secret1"}`, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"token":"tok"}`, rec.Body.String())
		})
	}
}

func TestServer_BookErrorsUseEnvelope(t *testing.T) {
	f := createTestServer(t)
	f.authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.User{ID: "u1"}, nil)
	f.bookUC.EXPECT().FindByID(mock.Anything, "xyz").
		Return(nil, domainerrors.ErrInvalidBookID.WrapMessage("malformed"))

	rec := f.do(http.MethodGet, "/books/xyz", "", "tok")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"success":false,"code":400,"message":"please enter a correct id","error":{"code":"INVALID_BOOK_ID"}}`,
		rec.Body.String())
}

func TestServer_BodyLimit(t *testing.T) {
	f := createTestServer(t)

	huge := `{"name":"` + strings.Repeat("a", 4096) + `","email":"ann@x.io","password":"secret1"}`
	rec := f.do(http.MethodPost, "/auth/signup", huge, "")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}
