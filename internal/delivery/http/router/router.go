// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"newswire/internal/delivery/http/middleware"
	"newswire/internal/delivery/http/router/handler"
	"newswire/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
	NewsHandler     *handler.NewsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler *handler.IdentityHandler
	newsHandler     *handler.NewsHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler: params.IdentityHandler,
		newsHandler:     params.NewsHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.identityHandler.Register)
		authGroup.POST("/login", r.identityHandler.Login)
		authGroup.POST("/refresh", r.identityHandler.Refresh)
		authGroup.POST("/logout", r.identityHandler.Logout)
		authGroup.POST("/change-password", r.identityHandler.ChangePassword,
			r.authMiddleware.Authenticate)
	}

	// Elevated registrations, superuser only
	adminAuthGroup := e.Group("/auth",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.IsSuperuser))
	{
		adminAuthGroup.POST("/register/author", r.identityHandler.RegisterAuthor)
		adminAuthGroup.POST("/register/superuser", r.identityHandler.RegisterSuperuser)
	}

	// User routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("/me", r.identityHandler.Me, r.authMiddleware.Authenticate)
		userGroup.GET("", r.identityHandler.ListUsers,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.IsSuperuser))
		userGroup.GET("/:id", r.identityHandler.GetUser, r.authMiddleware.Authenticate)
		userGroup.PATCH("/:id", r.identityHandler.UpdateUser, r.authMiddleware.Authenticate)
		userGroup.DELETE("/:id", r.identityHandler.DeleteUser,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.IsSuperuser))
	}

	// News routes. Reads accept anonymous callers and narrow visibility,
	// writes require the publishing roles.
	newsGroup := e.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.List, r.authMiddleware.AuthenticateOptional)
		newsGroup.GET("/:id", r.newsHandler.Get, r.authMiddleware.AuthenticateOptional)
		newsGroup.GET("/author/:id", r.newsHandler.ListByAuthor, r.authMiddleware.AuthenticateOptional)
		newsGroup.POST("", r.newsHandler.Create,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.CanPublish))
		newsGroup.PATCH("/:id", r.newsHandler.Update, r.authMiddleware.Authenticate)
		newsGroup.DELETE("/:id", r.newsHandler.Delete, r.authMiddleware.Authenticate)
	}
}
