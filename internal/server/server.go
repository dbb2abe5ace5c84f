package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beetlebot/flyguide/internal/config"
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/history"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Server exposes the flight and guide pipelines over HTTP.
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	router  *core.Router
	history *history.FileStore
	logger  *logrus.Logger
}

// New wires routes and middleware. store may be nil, in which case searches
// are not recorded and the history endpoint returns an empty list.
func New(cfg *config.Config, router *core.Router, store *history.FileStore, logger *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, cfg: cfg, router: router, history: store, logger: logger}

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(Logging(logger))

	e.GET("/health", s.health)

	api := e.Group("/api/v1")
	api.GET("/history", s.listHistory)
	limit := RateLimit(cfg.Server.RateLimit)
	api.POST("/flights/search", s.searchFlights, limit)
	api.POST("/guide/search", s.searchGuide, limit)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("flyguide server listening")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}
