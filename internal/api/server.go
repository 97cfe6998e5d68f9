// Package api assembles the HTTP surface: routing, handlers and the
// translation of service errors into status codes and JSON bodies.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"expenses/internal/auth"
	"expenses/internal/config"
	"expenses/internal/middleware"
	"expenses/internal/service"
	"expenses/internal/storage"
)

// New assembles the echo server: services on top of the store, middleware,
// routes and the central error handler. The returned instance is ready to
// serve; tests drive it directly via ServeHTTP.
func New(cfg *config.Config, store storage.Store) *echo.Echo {
	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(store, tokens, slog.Default())
	expenseService := service.NewExpenseService(store, slog.Default())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	// Metrics outermost so it observes the status the inner logging
	// middleware commits for failed requests.
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	if cfg.RateLimitRPS > 0 {
		e.Use(echomw.RateLimiterWithConfig(rateLimiterConfig(cfg.RateLimitRPS)))
	}

	e.GET("/", index)
	e.GET("/spec", specHandler)
	e.GET("/swagger", swaggerHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authHandler := NewAuthHandler(authService)
	ag := e.Group("/auth")
	ag.POST("/register", authHandler.Register)
	ag.POST("/login", authHandler.Login)
	ag.POST("/refresh", authHandler.Refresh, middleware.JWT(tokens))

	expenseHandler := NewExpenseHandler(expenseService)
	eg := e.Group("/expenses", middleware.JWT(tokens), middleware.ResolveCaller(store))
	eg.POST("", expenseHandler.Create)
	eg.POST("/", expenseHandler.Create)
	eg.GET("", expenseHandler.List)
	eg.GET("/", expenseHandler.List)
	eg.GET("/:id", expenseHandler.Get)
	eg.PATCH("/:id", expenseHandler.Update)
	eg.DELETE("/:id", expenseHandler.Delete)

	return e
}

// index is a test endpoint to see if the service is up.
func index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Hello from Expenses API!"})
}

func rateLimiterConfig(rps float64) echomw.RateLimiterConfig {
	return echomw.RateLimiterConfig{
		Skipper: echomw.DefaultSkipper,
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(
			echomw.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(rps),
				Burst:     int(rps) * 2,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	}
}
