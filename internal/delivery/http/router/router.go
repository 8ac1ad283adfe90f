// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boardroom/internal/delivery/http/middleware"
	"boardroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	WorkspaceHandler *handler.WorkspaceHandler
	NodeHandler      *handler.NodeHandler
	MessageHandler   *handler.MessageHandler
	AdvisorHandler   *handler.AdvisorHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	workspaceHandler *handler.WorkspaceHandler
	nodeHandler      *handler.NodeHandler
	messageHandler   *handler.MessageHandler
	advisorHandler   *handler.AdvisorHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		workspaceHandler: params.WorkspaceHandler,
		nodeHandler:      params.NodeHandler,
		messageHandler:   params.MessageHandler,
		advisorHandler:   params.AdvisorHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service banner and health check
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Workspace routes require authentication
	workspaceGroup := e.Group("/workspaces")
	workspaceGroup.Use(r.authMiddleware.Authenticate)
	{
		workspaceGroup.POST("", r.workspaceHandler.Create)
		workspaceGroup.GET("", r.workspaceHandler.List)
		workspaceGroup.GET("/:id", r.workspaceHandler.Get)
		workspaceGroup.PUT("/:id", r.workspaceHandler.Update)
		workspaceGroup.DELETE("/:id", r.workspaceHandler.Delete)
	}

	// Node routes require authentication
	nodeGroup := e.Group("/nodes")
	nodeGroup.Use(r.authMiddleware.Authenticate)
	{
		nodeGroup.POST("", r.nodeHandler.Create)
		nodeGroup.GET("", r.nodeHandler.List)
		nodeGroup.GET("/:id", r.nodeHandler.Get)
		nodeGroup.PUT("/:id", r.nodeHandler.Update)
		nodeGroup.DELETE("/:id", r.nodeHandler.Delete)
	}

	// Message routes require authentication
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.POST("", r.messageHandler.Create)
		messageGroup.GET("", r.messageHandler.List)
		messageGroup.GET("/:id", r.messageHandler.Get)
		messageGroup.PUT("/:id", r.messageHandler.Update)
		messageGroup.DELETE("/:id", r.messageHandler.Delete)
	}

	// Advisor routes: the catalog is public, chatting is not
	advisorGroup := e.Group("/advisors")
	{
		advisorGroup.GET("/models", r.advisorHandler.ListModels)
		advisorGroup.POST("/chat", r.advisorHandler.Chat, r.authMiddleware.Authenticate)
	}

	// Summary routes require authentication
	summaryGroup := e.Group("/summary")
	summaryGroup.Use(r.authMiddleware.Authenticate)
	{
		summaryGroup.POST("/workspace/:id", r.advisorHandler.SummarizeWorkspace)
	}
}
