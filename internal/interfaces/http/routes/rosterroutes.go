package routes

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/authorization"
)

// RosterRouteConfig holds dependencies for shift and schedule routes.
type RosterRouteConfig struct {
	RosterHandler  *handlers.RosterHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupRosterRoutes configures shift template, scheduled shift and
// assignment routes.
func SetupRosterRoutes(engine *gin.Engine, cfg *RosterRouteConfig) {
	shifts := engine.Group("/api/shifts")
	shifts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		shifts.GET("/templates", cfg.RosterHandler.ListTemplates)
		shifts.POST("/templates", authorization.RequireScheduleManagement(), cfg.RosterHandler.CreateTemplate)
		shifts.GET("/templates/:id", cfg.RosterHandler.GetTemplate)
		shifts.PUT("/templates/:id", authorization.RequireScheduleManagement(), cfg.RosterHandler.UpdateTemplate)

		shifts.GET("/scheduled", cfg.RosterHandler.ListShifts)
		shifts.POST("/scheduled", authorization.RequireScheduleManagement(), cfg.RosterHandler.CreateShift)
		shifts.GET("/scheduled/:id", cfg.RosterHandler.GetShift)
		shifts.DELETE("/scheduled/:id", authorization.RequireScheduleManagement(), cfg.RosterHandler.DeleteShift)
	}

	schedule := engine.Group("/api/schedule")
	schedule.Use(cfg.AuthMiddleware.RequireAuth())
	{
		schedule.GET("", cfg.RosterHandler.GetSchedule)
		schedule.POST("/assignments", authorization.RequireScheduleManagement(), cfg.RosterHandler.CreateAssignment)
		schedule.DELETE("/assignments/:id", authorization.RequireScheduleManagement(), cfg.RosterHandler.DeleteAssignment)
	}
}
