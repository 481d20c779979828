package routes

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/authorization"
)

// OrganizationRouteConfig holds dependencies for organization and
// classification routes.
type OrganizationRouteConfig struct {
	OrganizationHandler *handlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupOrganizationRoutes configures organization management routes.
func SetupOrganizationRoutes(engine *gin.Engine, cfg *OrganizationRouteConfig) {
	org := engine.Group("/api/organization")
	org.Use(cfg.AuthMiddleware.RequireAuth())
	{
		org.GET("", cfg.OrganizationHandler.GetOrganization)
		org.PUT("", authorization.RequireAdmin(), cfg.OrganizationHandler.UpdateOrganization)
	}

	teams := engine.Group("/api/teams")
	teams.Use(cfg.AuthMiddleware.RequireAuth())
	{
		teams.GET("", cfg.OrganizationHandler.ListTeams)
	}

	classifications := engine.Group("/api/classifications")
	classifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		classifications.GET("", cfg.OrganizationHandler.ListClassifications)
		classifications.POST("", authorization.RequireScheduleManagement(), cfg.OrganizationHandler.CreateClassification)
		classifications.PUT("/:id", authorization.RequireScheduleManagement(), cfg.OrganizationHandler.UpdateClassification)
	}
}
