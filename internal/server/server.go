// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"towncar-relay/internal/common/config"
	"towncar-relay/internal/common/logger"
	"towncar-relay/internal/relay"
	"towncar-relay/internal/tenant"
)

// Server is the HTTP surface of the relay. Routing, CORS, and lifecycle
// only; all submission semantics live in the relay service.
type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	registry *tenant.Registry
	svc      *relay.Service
	logger   logger.Logger
}

func New(cfg *config.Config, registry *tenant.Registry, svc *relay.Service, log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		cfg:      cfg,
		registry: registry,
		svc:      svc,
		logger:   log,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			allowed := isAllowedOrigin(origin, registry)
			if !allowed {
				log.Warn("blocked by CORS", map[string]interface{}{"origin": origin})
			}
			return allowed, nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, headerTenantOverride},
		AllowCredentials: true,
	}))

	e.GET("/", s.handleRoot)
	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/api/send", s.handleSend)
	e.POST("/api/contact", s.handleContact)

	return s
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info("http server listening", map[string]interface{}{"addr": addr})
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the router for handler-level tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
