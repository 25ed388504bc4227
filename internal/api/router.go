package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/teuslab/publishing-api/internal/api/handler"
	"github.com/teuslab/publishing-api/internal/api/middleware"
	"github.com/teuslab/publishing-api/internal/core/domain"
	"github.com/teuslab/publishing-api/internal/core/service"
	"github.com/teuslab/publishing-api/internal/infrastructure/config"
	"github.com/teuslab/publishing-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/teuslab/publishing-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Dependencies ---
	adminRepo := postgres.NewAdminRepository(db)
	userRepo := postgres.NewUserRepository(db)
	articleRepo := postgres.NewArticleRepository(db)

	credentials := service.NewCredentialStore(adminRepo, userRepo)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, credentials)
	limiter := redisinfra.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	adminService := service.NewAdminService(adminRepo, userRepo, credentials, tokens, limiter, log)
	userService := service.NewUserService(userRepo, credentials, tokens, limiter, log)
	articleService := service.NewArticleService(articleRepo, credentials)

	adminHandler := handler.NewAdminHandler(adminService)
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)

	auth := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	userOnly := middleware.RequireRole(domain.RoleUser)

	// --- Versioned API ---
	v1 := e.Group("/v1")

	admin := v1.Group("/admin")
	admin.POST("/login", adminHandler.Login)
	admin.POST("", adminHandler.Create, auth, adminOnly)
	admin.PUT("", adminHandler.Update, auth, adminOnly)
	admin.GET("", adminHandler.List, auth, adminOnly)
	admin.DELETE("/delete-user/:userId", adminHandler.DeleteUser, auth, adminOnly)
	admin.GET("/get-users", adminHandler.GetUsers, auth, adminOnly)

	user := v1.Group("/user")
	user.POST("", userHandler.Create)
	user.POST("/login", userHandler.Login)
	user.PUT("", userHandler.Update, auth, userOnly)
	user.DELETE("", userHandler.Delete, auth, userOnly)

	article := v1.Group("/article")
	article.POST("", articleHandler.Create, auth, adminOnly)
	article.GET("", articleHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
