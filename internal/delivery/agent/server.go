// Package agent hosts the recipient agent's local control API.
package agent

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"noticetrack/config"
	"noticetrack/internal/delivery"
	"noticetrack/internal/delivery/agent/handler"
	"noticetrack/internal/delivery/middleware"
	deliverymw "noticetrack/internal/delivery/http/middleware"
	"noticetrack/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type agentServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the agent server
type ServerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	FeedHandler   *handler.FeedHandler
	PollerHandler *handler.PollerHandler
	EventHandler  *handler.EventHandler
}

// NewServer creates the agent's local HTTP server. It binds to loopback
// only: the control API is for the recipient's own tooling, not the network.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	e.HTTPErrorHandler = deliverymw.NewErrorMiddleware(params.Logger).HandleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")
	{
		api.GET("/feed", params.FeedHandler.GetFeed)
		api.POST("/events", params.EventHandler.LogEvent)

		api.GET("/poller/status", params.PollerHandler.Status)
		api.POST("/poller/start", params.PollerHandler.Start)
		api.POST("/poller/stop", params.PollerHandler.Stop)
		api.POST("/poller/cycle", params.PollerHandler.RunCycle)

		api.GET("/notifications", params.PollerHandler.Notifications)
		api.POST("/notifications/:noticeID/read", params.PollerHandler.MarkRead)
	}

	srv := &agentServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the agent HTTP server
func (s *agentServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting agent control server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the agent server
func (s *agentServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down agent control server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
