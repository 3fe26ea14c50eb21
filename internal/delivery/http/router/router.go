// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pitchboard/internal/delivery/http/middleware"
	"pitchboard/internal/delivery/http/router/handler"
	"pitchboard/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	StartupHandler    *handler.StartupHandler
	UserHandler       *handler.UserHandler
	SessionMiddleware *middleware.SessionMiddleware
	Gatherer          prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	startupHandler    *handler.StartupHandler
	userHandler       *handler.UserHandler
	sessionMiddleware *middleware.SessionMiddleware
	gatherer          prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		startupHandler:    params.StartupHandler,
		userHandler:       params.UserHandler,
		sessionMiddleware: params.SessionMiddleware,
		gatherer:          params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and Prometheus exposition
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/github/login", r.authHandler.GitHubLogin)
		authGroup.GET("/github/callback", r.authHandler.GitHubCallback)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API routes; the session middleware materializes the caller's session
	// but never rejects a request. Sign-in gating lives in the use cases.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.sessionMiddleware.Materialize)
	{
		apiGroup.GET("/session", r.authHandler.GetSession)
		apiGroup.GET("/startups", r.startupHandler.List)
		apiGroup.POST("/startups", r.startupHandler.Create)
		apiGroup.GET("/startups/:id", r.startupHandler.Detail)
		apiGroup.GET("/users/:id", r.userHandler.Profile)
	}
}
