package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authApp "rosterd/internal/application/auth"
	"rosterd/internal/application/callout/usecases"
	leaveApp "rosterd/internal/application/leave"
	orgApp "rosterd/internal/application/organization"
	rosterApp "rosterd/internal/application/roster"
	userApp "rosterd/internal/application/user"
	"rosterd/internal/infrastructure/auth"
	"rosterd/internal/infrastructure/config"
	"rosterd/internal/infrastructure/ratelimit"
	"rosterd/internal/infrastructure/repository"
	"rosterd/internal/interfaces/http/handlers"
	"rosterd/internal/interfaces/http/middleware"
	"rosterd/internal/shared/db"
	"rosterd/internal/shared/logger"
)

// Container wires repositories, application services, use cases and
// handlers together, and owns the clients that need closing on shutdown.
type Container struct {
	engine *gin.Engine
	dbConn *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	organizationHandler *handlers.OrganizationHandler
	rosterHandler       *handlers.RosterHandler
	leaveHandler        *handlers.LeaveHandler
	calloutHandler      *handlers.CalloutHandler
	healthHandler       *handlers.HealthHandler

	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.LoginRateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(dbConn *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		dbConn: dbConn,
		cfg:    cfg,
		log:    log,
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbConn)
	orgRepo := repository.NewOrganizationRepository(dbConn)
	templateRepo := repository.NewTemplateRepository(dbConn)
	shiftRepo := repository.NewShiftRepository(dbConn)
	assignmentRepo := repository.NewAssignmentRepository(dbConn)
	leaveRepo := repository.NewLeaveRepository(dbConn)
	eventRepo := repository.NewCalloutEventRepository(dbConn)
	attemptRepo := repository.NewCalloutAttemptRepository(dbConn)
	ledgerRepo := repository.NewOTLedgerRepository(dbConn)
	candidateReader := repository.NewCandidateReader(dbConn)

	txManager := db.NewTransactionManager(dbConn)

	// Auth infrastructure
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	limiter, err := c.buildLoginLimiter()
	if err != nil {
		return nil, err
	}

	// Application services
	authService := authApp.NewService(userRepo, hasher, jwtSvc, log)
	userService := userApp.NewService(userRepo, hasher, log)
	orgService := orgApp.NewService(orgRepo, log)
	rosterService := rosterApp.NewService(templateRepo, shiftRepo, assignmentRepo, userRepo, log)
	leaveService := leaveApp.NewService(leaveRepo, log)

	// Callout use cases
	openEventUC := usecases.NewOpenEventUseCase(eventRepo, shiftRepo, orgRepo, log)
	getEventUC := usecases.NewGetEventUseCase(eventRepo, attemptRepo, shiftRepo, log)
	listEventsUC := usecases.NewListEventsUseCase(eventRepo, log)
	computeListUC := usecases.NewComputeListUseCase(eventRepo, shiftRepo, candidateReader, log)
	recordAttemptUC := usecases.NewRecordAttemptUseCase(
		txManager, eventRepo, attemptRepo, userRepo, shiftRepo, ledgerRepo, assignmentRepo, log)
	cancelEventUC := usecases.NewCancelEventUseCase(txManager, eventRepo, log)

	// Handlers
	c.authHandler = handlers.NewAuthHandler(authService, log)
	c.userHandler = handlers.NewUserHandler(userService, log)
	c.organizationHandler = handlers.NewOrganizationHandler(orgService, log)
	c.rosterHandler = handlers.NewRosterHandler(rosterService, log)
	c.leaveHandler = handlers.NewLeaveHandler(leaveService, log)
	c.calloutHandler = handlers.NewCalloutHandler(
		openEventUC, getEventUC, listEventsUC, computeListUC, recordAttemptUC, cancelEventUC, log)
	c.healthHandler = handlers.NewHealthHandler(dbConn)

	// Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(jwtSvc, userRepo, log)
	c.loginLimiter = middleware.NewLoginRateLimiter(limiter, log)

	return c, nil
}

// buildLoginLimiter returns a redis-backed sliding window limiter when
// redis is enabled, and a noop limiter otherwise.
func (c *Container) buildLoginLimiter() (ratelimit.Limiter, error) {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, login rate limiting is off")
		return ratelimit.NewNoopLimiter(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	c.redis = client

	attempts := c.cfg.RateLimit.LoginAttempts
	if attempts <= 0 {
		attempts = 10
	}
	window := time.Duration(c.cfg.RateLimit.LoginWindowS) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	return ratelimit.NewRedisLimiter(client, attempts, window), nil
}

// Shutdown closes the clients owned by the container.
func (c *Container) Shutdown() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}
