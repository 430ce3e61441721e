package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tableorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// NewRouter assembles the echo instance: recovery, request logging, the
// health check, swagger UI and the contract-validated API routes.
func NewRouter(server *Server, logger *slog.Logger, checks ...HealthCheck) (*echo.Echo, error) {
	if err := servers.RegisterSwagger(); err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Server.RegisterOnShutdown(server.CloseStreams)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request completed with error", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request completed", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		for _, check := range checks {
			if checkErr := check(ctx); checkErr != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
