package http

import (
	"log/slog"

	"roomservice/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds transport level settings.
type RouterConfig struct {
	Logger *slog.Logger

	// Metrics enables request metrics and GET /metrics when set.
	Metrics *metrics.Metrics

	// CORSOrigins defaults to every origin.
	CORSOrigins []string

	// ValidateRequests checks every documented route against openapi.yaml.
	ValidateRequests bool
}

// NewRouter builds the echo instance with middleware, the API routes,
// /metrics and /swagger/*.
func NewRouter(server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if cfg.Metrics != nil {
		e.Use(MetricsMiddleware(cfg.Metrics))
	}
	e.Use(RequestLogger(cfg.Logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
	}))

	if cfg.ValidateRequests {
		validator, validatorErr := OpenAPIValidator(doc)
		if validatorErr != nil {
			return nil, validatorErr
		}
		e.Use(validator)
	}

	RegisterHandlers(e, server)

	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
