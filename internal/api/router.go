package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/user-auth-api/docs"
	"github.com/userhub/user-auth-api/internal/api/handler"
	"github.com/userhub/user-auth-api/internal/api/middleware"
	"github.com/userhub/user-auth-api/internal/core/domain"
	"github.com/userhub/user-auth-api/internal/core/service"
	mongodb "github.com/userhub/user-auth-api/internal/infrastructure/db/mongo"
	"github.com/userhub/user-auth-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userauth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(userRepo, tokenService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(tokenService, userRepo)

	// --- Service surface (no auth required) ---
	infoHandler := handler.NewInfoHandler(cfg.BasePath)
	e.GET("/", infoHandler.Banner)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- User routes ---
	users := e.Group(cfg.BasePath)
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)

	protected := users.Group("", authMiddleware)
	protected.GET("/profile", userHandler.GetProfile)
	protected.PUT("/profile", userHandler.UpdateProfile)
	protected.PUT("/change-password", userHandler.ChangePassword)
	protected.DELETE("/profile", userHandler.DeleteAccount)
	protected.GET("", userHandler.GetAllUsers, middleware.RBAC(domain.RoleAdmin))

	return e
}
