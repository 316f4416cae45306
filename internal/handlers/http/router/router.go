// Package router assembles the gin engine for the GM service.
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	v1 "github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/v1"
)

// Config holds dependencies for the router
type Config struct {
	Handler        *v1.Handler
	OwnerHeader    string
	AllowedOrigins []string
	// Health reports whether the backing stores are reachable. Nil means
	// always healthy.
	Health func(ctx context.Context) error
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Handler == nil {
		vb.RequiredField("Handler")
	}
	errors.ValidateRequired("OwnerHeader", c.OwnerHeader, vb)

	return vb.Build()
}

// New builds the engine with middleware, ops endpoints and /api/v1.
func New(cfg *Config) (*gin.Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(),
		middleware.CORS(cfg.AllowedOrigins, cfg.OwnerHeader),
	)

	engine.GET("/healthz", healthz(cfg.Health))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api/v1", middleware.Owner(cfg.OwnerHeader))
	cfg.Handler.RegisterRoutes(api)

	engine.NoRoute(func(c *gin.Context) {
		middleware.WriteError(c, errors.NotFoundf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
	})

	return engine, nil
}

func healthz(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
