package routes

import (
	"github.com/gin-gonic/gin"

	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/authorization"
)

// CalloutRouteConfig holds dependencies for overtime callout routes.
type CalloutRouteConfig struct {
	CalloutHandler      *handlers.CalloutHandler
	OrganizationHandler *handlers.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupCalloutRoutes configures overtime callout routes. The whole group
// requires schedule management permission.
func SetupCalloutRoutes(engine *gin.Engine, cfg *CalloutRouteConfig) {
	callout := engine.Group("/api/callout")
	callout.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireScheduleManagement())
	{
		callout.GET("/reasons", cfg.OrganizationHandler.ListOTReasons)

		callout.GET("/events", cfg.CalloutHandler.ListEvents)
		callout.POST("/events", cfg.CalloutHandler.OpenEvent)
		callout.GET("/events/:id", cfg.CalloutHandler.GetEvent)
		callout.GET("/events/:id/list", cfg.CalloutHandler.GetList)
		callout.POST("/events/:id/attempt", cfg.CalloutHandler.RecordAttempt)
		callout.PATCH("/events/:id/cancel", cfg.CalloutHandler.CancelEvent)
	}
}
