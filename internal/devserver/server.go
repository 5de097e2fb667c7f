package devserver

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
)

// Server is the lifecycle contract for the dev backend process.
//
// RunServer blocks until a stop signal arrives; Shutdown drains in-flight
// requests.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds the dev backend server around the handler's router.
func NewServer(h *Handler, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errors.New("no HTTP address configured")
	}

	return &server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           h.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
