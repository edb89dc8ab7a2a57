package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orgdesk/admin-api/internal/api/handler"
	"github.com/orgdesk/admin-api/internal/api/middleware"
	"github.com/orgdesk/admin-api/internal/core/domain"
	"github.com/orgdesk/admin-api/internal/core/ports"
	"github.com/orgdesk/admin-api/internal/core/service"
	mongodb "github.com/orgdesk/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orgdesk/admin-api/internal/infrastructure/db/redis"
	"github.com/orgdesk/admin-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, notifier ports.Notifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("orgadmin"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	deptRepo := mongodb.NewDepartmentRepository(db)
	resetRepo := mongodb.NewResetRepository(db)
	limiter := redisdb.NewResetLimiter(rdb, cfg.ResetMaxRequests, cfg.ResetWindow)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenService)
	resetService := service.NewResetService(userRepo, resetRepo, mailer, limiter, notifier, cfg.OTPTTL, log)
	deptService := service.NewDepartmentService(deptRepo, log)
	userService := service.NewUserService(userRepo, deptRepo, log)
	dashboardService := service.NewDashboardService(userRepo, deptRepo)

	authHandler := handler.NewAuthHandler(authService, resetService)
	deptHandler := handler.NewDepartmentHandler(deptService)
	userHandler := handler.NewUserHandler(userService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	anyRole := middleware.AuthorizeAny(userRepo, tokenService)
	superOnly := middleware.Authorize(userRepo, tokenService, domain.RoleSuperAdmin)
	adminUp := middleware.Authorize(userRepo, tokenService, domain.RoleSuperAdmin, domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset/request", authHandler.RequestReset)
	e.POST("/auth/reset/verify", authHandler.VerifyOTP)
	e.POST("/auth/reset", authHandler.CommitReset)

	// --- Departments ---
	e.GET("/departments", deptHandler.List, anyRole)
	e.GET("/departments/:id", deptHandler.Get, anyRole)
	e.POST("/departments", deptHandler.Create, superOnly)
	e.PATCH("/departments/:id", deptHandler.Update, adminUp)
	e.DELETE("/departments/:id", deptHandler.Delete, superOnly)

	// --- Users ---
	e.POST("/users", userHandler.Create, adminUp)
	e.GET("/users", userHandler.List, anyRole)
	e.GET("/users/:id", userHandler.Get, anyRole)
	e.PATCH("/users/:id", userHandler.Update, adminUp)
	e.DELETE("/users/:id", userHandler.Delete, adminUp)

	// --- Dashboard ---
	e.GET("/dashboard/summary", dashboardHandler.Summary, adminUp)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
