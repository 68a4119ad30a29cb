// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the routes need, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookHandler    *handler.BookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookHandler    *handler.BookHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookHandler:    params.BookHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		// Existing clients log in with a JSON body on GET.
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Book routes that require authentication
	bookGroup := e.Group("/books")
	bookGroup.Use(r.authMiddleware.Authenticate)
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.POST("", r.bookHandler.Create)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.PUT("/:id", r.bookHandler.Update)
		bookGroup.DELETE("/:id", r.bookHandler.Delete)
	}
}
