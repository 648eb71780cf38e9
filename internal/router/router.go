package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"nocturna/internal/auth"
	"nocturna/internal/config"
	"nocturna/internal/errors"
	"nocturna/internal/handler"
	"nocturna/internal/logger"
	"nocturna/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Reservation *handler.ReservationHandler
	HeadCount   *handler.HeadCountHandler
	Live        *handler.LiveHandler
	Catalog     *handler.CatalogHandler
	Dashboard   *handler.DashboardHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logrus.Logger,
	h Handlers,
	jwtService *auth.JWTService,
	authService service.AuthService,
) {
	e.Use(middleware.RequestID())
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", h.Health.Health)
	if cfg.DebugEndpoints {
		api.GET("/debug/env", h.Health.DebugEnv)
	}
	api.POST("/reservations", h.Reservation.Create, reservationRateLimit(cfg.RateLimitPerMinute))
	api.GET("/availability", h.Reservation.Availability)
	api.GET("/headcount", h.HeadCount.Public)
	api.GET("/live/count", h.Live.Count)
	api.GET("/menu", h.Catalog.Menu)
	api.GET("/faq", h.Catalog.FAQ)
	api.POST("/admin/login", h.Auth.Login)

	// Admin routes (require a JWT bound to the current session)
	admin := api.Group("/admin",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,query:token",
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.ValidateToken(token)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return sessionRejected()
			},
		}),
		RequireSession(authService),
	)

	admin.POST("/logout", h.Auth.Logout)
	admin.GET("/me", h.Auth.Me)
	admin.GET("/dashboard", h.Dashboard.Summary)
	admin.GET("/events", h.Live.Events)

	// Reservation routes
	admin.GET("/reservations", h.Reservation.List)
	admin.GET("/reservations/:id", h.Reservation.Get)
	admin.PUT("/reservations/:id", h.Reservation.Update)
	admin.DELETE("/reservations/:id", h.Reservation.Delete)
	admin.GET("/newsletter", h.Reservation.Newsletter)

	// Headcount routes
	admin.GET("/headcount", h.HeadCount.Get)
	admin.PUT("/headcount", h.HeadCount.Set)
	admin.POST("/headcount/increment", h.HeadCount.Increment)
	admin.POST("/headcount/decrement", h.HeadCount.Decrement)
	admin.POST("/headcount/reset", h.HeadCount.Reset)

	// Catalog routes
	admin.PUT("/menu", h.Catalog.ReplaceMenu)
	admin.PUT("/faq", h.Catalog.ReplaceFAQ)

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}
}

// reservationRateLimit throttles the public booking form per client IP.
func reservationRateLimit(perMinute int) echo.MiddlewareFunc {
	if perMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / 60),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, errors.ErrorResponse{
				Error: "too many reservation attempts, try again in a minute",
				Code:  "RATE_LIMITED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
