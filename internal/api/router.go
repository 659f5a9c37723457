package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dishdash/dish-service/docs"
	"github.com/dishdash/dish-service/internal/api/handler"
	"github.com/dishdash/dish-service/internal/api/middleware"
	"github.com/dishdash/dish-service/internal/core/ports"
	"github.com/dishdash/dish-service/internal/core/service"
	mongodb "github.com/dishdash/dish-service/internal/infrastructure/db/mongo"
	redisdb "github.com/dishdash/dish-service/internal/infrastructure/db/redis"
	"github.com/dishdash/dish-service/internal/infrastructure/ratelimit"
	"github.com/dishdash/dish-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the rating rate limiter then runs on in-process counters.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dish"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), tokenService, cfg.BcryptCost, log)
	dishService := service.NewDishService(mongodb.NewDishRepository(db), log)
	ratingService := service.NewRatingService(mongodb.NewRatingRepository(db), log)

	var limiter ports.RateLimiter
	if rdb != nil {
		limiter = redisdb.NewFixedWindowLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	authHandler := handler.NewAuthHandler(authService)
	dishHandler := handler.NewDishHandler(dishService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	authGate := middleware.Auth(tokenService)
	rateGate := middleware.RateLimit(limiter, cfg.RateLimit.Requests, log)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)              // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth", authHandler.Login)
	e.POST("/users", authHandler.Register)

	// --- Dish routes (protected) ---
	e.POST("/dishes", dishHandler.Create, authGate)
	e.GET("/dishes", dishHandler.List, authGate)
	e.GET("/dishes/:id", dishHandler.Get, authGate)
	e.PUT("/dishes/:id", dishHandler.Update, authGate)
	e.DELETE("/dishes/:id", dishHandler.Delete, authGate)

	// --- Rating route (protected, rate limited) ---
	// The auth gate runs before the limiter so an unauthenticated caller
	// never consumes rate-limit budget.
	e.POST("/dish/rate", ratingHandler.Rate, authGate, rateGate)

	return e
}
