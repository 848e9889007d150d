package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/worldroam/countries-api/docs"
	"github.com/worldroam/countries-api/internal/api/handler"
	"github.com/worldroam/countries-api/internal/api/middleware"
	"github.com/worldroam/countries-api/internal/core/service"
	"github.com/worldroam/countries-api/internal/infrastructure/config"
	mongodb "github.com/worldroam/countries-api/internal/infrastructure/db/mongo"
	redisdb "github.com/worldroam/countries-api/internal/infrastructure/db/redis"
	"github.com/worldroam/countries-api/internal/infrastructure/http/handlers"
	"github.com/worldroam/countries-api/internal/infrastructure/restcountries"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("countries_api"))

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	favoritesService := service.NewFavoritesService(userRepo)

	countriesClient := restcountries.NewClient(cfg.Countries.BaseURL, 10*time.Second)
	countriesCache := redisdb.NewResponseCache(rdb, cfg.Countries.CacheTTL)
	countriesService := service.NewCountriesService(countriesClient, countriesCache, log)

	authHandler := handler.NewAuthHandler(authService)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService)
	countriesHandler := handler.NewCountriesHandler(countriesService)
	authMiddleware := middleware.Auth(tokens, userRepo)

	// --- Root banner and health probes (no auth required) ---
	rootHandler := handlers.NewRootHandler()
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", rootHandler.Banner)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- API routes ---
	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authMiddleware)

	favorites := apiGroup.Group("/favorites", authMiddleware)
	favorites.GET("", favoritesHandler.List)
	favorites.POST("", favoritesHandler.Add)
	favorites.DELETE("/:countryCode", favoritesHandler.Remove)

	countries := apiGroup.Group("/countries")
	countries.GET("", countriesHandler.All)
	countries.GET("/name/:name", countriesHandler.ByName)
	countries.GET("/region/:region", countriesHandler.ByRegion)
	countries.GET("/code/:code", countriesHandler.ByCode)

	return e
}
