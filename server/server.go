// Package server exposes the parse pipeline over a JSON HTTP API.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/hrygo/eventsense/internal/profile"
	"github.com/hrygo/eventsense/plugin/nlp/eventparse"
	"github.com/hrygo/eventsense/server/middleware"
)

// Server hosts the parse endpoint and health check.
type Server struct {
	echoServer *echo.Echo
	profile    *profile.Profile
	parser     *eventparse.Parser
	logger     *slog.Logger

	// parseSemaphore bounds concurrent parses to keep the tagger's memory
	// use predictable under load.
	parseSemaphore *semaphore.Weighted
}

// New creates a Server wired to the given parser.
func New(p *profile.Profile, parser *eventparse.Parser, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echoServer:     e,
		profile:        p,
		parser:         parser,
		logger:         logger,
		parseSemaphore: semaphore.NewWeighted(p.MaxConcurrentParses),
	}

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	limiter := middleware.NewRateLimiter(p.RateLimitPerSecond, p.RateLimitBurst)
	api := e.Group("/api/v1", limiter.Middleware())
	api.POST("/parse", s.handleParse)

	e.GET("/healthz", s.handleHealthz)

	return s
}

// Start begins serving on the profile's listen address. It blocks until
// the server stops.
func (s *Server) Start() error {
	s.logger.Info("server listening",
		slog.String("addr", s.profile.ListenAddr()),
		slog.String("mode", s.profile.Mode),
		slog.String("version", s.profile.Version))
	return s.echoServer.Start(s.profile.ListenAddr())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echoServer.Shutdown(ctx)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echoServer
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
