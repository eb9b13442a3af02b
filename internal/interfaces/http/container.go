package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	licenseUsecases "github.com/corpit/licensedesk/internal/application/license/usecases"
	notificationUsecases "github.com/corpit/licensedesk/internal/application/notification/usecases"
	"github.com/corpit/licensedesk/internal/domain/notification"
	"github.com/corpit/licensedesk/internal/infrastructure/auth"
	"github.com/corpit/licensedesk/internal/infrastructure/config"
	"github.com/corpit/licensedesk/internal/infrastructure/email"
	"github.com/corpit/licensedesk/internal/infrastructure/permission"
	"github.com/corpit/licensedesk/internal/infrastructure/ratelimit"
	"github.com/corpit/licensedesk/internal/infrastructure/scheduler"
	"github.com/corpit/licensedesk/internal/interfaces/http/middleware"
	"github.com/corpit/licensedesk/internal/shared/db"
	"github.com/corpit/licensedesk/internal/shared/logger"
	"github.com/corpit/licensedesk/internal/shared/markdown"
)

const (
	authRateLimit       = 20
	authRateLimitWindow = time.Minute
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and the reminder scheduler. Shutdown releases what it opened.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Shared services
	jwtSvc       *auth.JWTService
	hasher       *auth.BcryptPasswordHasher
	txManager    *db.TransactionManager
	enforcer     *permission.Enforcer
	loginLimiter *ratelimit.LoginLimiter
	dispatcher   notification.Dispatcher
	renderer     markdown.Renderer

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires every component against db. Redis is optional: when it
// is disabled or unreachable, login throttling and the auth rate limiter are
// switched off.
func NewContainer(ctx context.Context, gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gormDB,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}
	if err := c.initScheduler(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.repos = newRepositories(c.db, c.log)
	c.txManager = db.NewTransactionManager(c.db)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.dispatcher = email.NewDispatcher(c.cfg.Email, c.log.Named("email"))
	c.renderer = markdown.NewRenderer()

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	c.enforcer = enforcer

	if c.cfg.Redis.Enabled {
		client, err := ratelimit.NewRedisClient(ctx, c.cfg.Redis)
		if err != nil {
			c.log.Warnw("redis unavailable, login throttling disabled", "error", err)
		} else {
			c.redis = client
			c.loginLimiter = ratelimit.NewLoginLimiter(client, ratelimit.Config{
				AttemptsPerMinute: c.cfg.Auth.LoginLimit.AttemptsPerMinute,
				AttemptsPerHour:   c.cfg.Auth.LoginLimit.AttemptsPerHour,
			})
			c.rateLimiter = middleware.NewRateLimiter(client, "auth", authRateLimit, authRateLimitWindow, c.log)
			c.log.Infow("redis connection established", "address", c.cfg.Redis.GetAddr())
		}
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
	return nil
}

func (c *Container) initScheduler() error {
	if !c.cfg.Notification.Scheduler.Enabled {
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterReminderJob(c.cfg.Notification.Scheduler.Spec, c.ucs.runReminders); err != nil {
		return err
	}
	c.schedulerManager = manager
	return nil
}

// Engine returns the gin engine. Call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartScheduler starts the reminder job when it is enabled.
func (c *Container) StartScheduler() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// RunReminders exposes the reminder sweep to the command line.
func (c *Container) RunReminders() *notificationUsecases.RunRemindersUseCase {
	return c.ucs.runReminders
}

// ListExpiring exposes the expiring-license report to the command line.
func (c *Container) ListExpiring() *notificationUsecases.ListExpiringUseCase {
	return c.ucs.listExpiring
}

// DashboardStats exposes the dashboard counters to the command line.
func (c *Container) DashboardStats() *licenseUsecases.GetDashboardStatsUseCase {
	return c.ucs.dashboardStats
}

// Shutdown stops the scheduler and closes Redis. The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
