// Package worker hosts the dispatch loop and its operational HTTP surface.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"minaret/config"
	"minaret/internal/delivery"
	"minaret/internal/delivery/middleware"
	"minaret/internal/delivery/worker/handler"
	"minaret/internal/delivery/worker/validator"
	"minaret/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc                  fx.Lifecycle
	Cfg                 *config.Config
	Logger              *slog.Logger
	MetricsHandler      *handler.MetricsHandler
	NotificationHandler *handler.NotificationHandler
}

// NewServer creates the worker's operational HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	// Recover first so panics never escape the handler chain, request ID
	// before the logger so every log line carries it.
	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/metrics", params.MetricsHandler.GetMetrics)

	// Debug routes are opt-in; they allow arbitrary enqueues and on-demand
	// cycles and must stay off outside development.
	if params.Cfg.DebugRoutes != nil && params.Cfg.DebugRoutes.Enabled {
		params.Logger.Warn("Debug routes enabled")
		e.POST("/debug/notifications", params.NotificationHandler.Enqueue)
		e.POST("/debug/dispatch", params.NotificationHandler.RunCycle)
	}

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
