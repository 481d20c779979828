// Package http assembles the Gin engine: middleware chain, route
// groups and the dependency container behind them.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/interfaces/http/routes"
	"rosterd/internal/shared/metrics"
)

// SetupRoutes configures the middleware chain and all HTTP routes.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.Metrics())

	c.engine.GET("/health", c.healthHandler.Check)
	c.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.loginLimiter,
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.userHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupOrganizationRoutes(c.engine, &routes.OrganizationRouteConfig{
		OrganizationHandler: c.organizationHandler,
		AuthMiddleware:      c.authMiddleware,
	})

	routes.SetupRosterRoutes(c.engine, &routes.RosterRouteConfig{
		RosterHandler:  c.rosterHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupLeaveRoutes(c.engine, &routes.LeaveRouteConfig{
		LeaveHandler:   c.leaveHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCalloutRoutes(c.engine, &routes.CalloutRouteConfig{
		CalloutHandler:      c.calloutHandler,
		OrganizationHandler: c.organizationHandler,
		AuthMiddleware:      c.authMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}
