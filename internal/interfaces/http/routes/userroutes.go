package routes

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.POST("", authorization.RequireAdmin(), cfg.UserHandler.CreateUser)

		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", authorization.RequireAdmin(), cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", authorization.RequireAdmin(), cfg.UserHandler.DeactivateUser)
	}
}
