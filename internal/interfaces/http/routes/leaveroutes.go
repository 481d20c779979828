package routes

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/authorization"
)

// LeaveRouteConfig holds dependencies for leave management routes.
type LeaveRouteConfig struct {
	LeaveHandler   *handlers.LeaveHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupLeaveRoutes configures leave request routes.
func SetupLeaveRoutes(engine *gin.Engine, cfg *LeaveRouteConfig) {
	leave := engine.Group("/api/leave")
	leave.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Named endpoints must come before /:id
		leave.GET("/types", cfg.LeaveHandler.ListLeaveTypes)

		leave.GET("", cfg.LeaveHandler.ListLeave)
		leave.POST("", cfg.LeaveHandler.CreateLeave)
		leave.GET("/:id", cfg.LeaveHandler.GetLeave)
		leave.DELETE("/:id", cfg.LeaveHandler.CancelLeave)
		leave.PATCH("/:id/review", authorization.RequireLeaveApproval(), cfg.LeaveHandler.ReviewLeave)
	}
}
