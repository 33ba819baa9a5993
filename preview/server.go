package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/0xalexb/pumlgen/preview/middleware"
)

// ReadHeaderTimeout is the default timeout for reading request headers.
const ReadHeaderTimeout = 10 * time.Second

// Server serves a directory of generated artifacts over HTTP.
type Server struct {
	config     Config
	server     *http.Server
	listener   net.Listener
	onServeErr func()
}

// NewServer creates a new Server for the given config.
// It sets config defaults, validates the config, and builds a logged,
// panic-recovering file server over the configured directory.
// The onServeErr callback, if non-nil, is called when the background Serve
// goroutine encounters a fatal error.
func NewServer(cfg Config, onServeErr func()) (*Server, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	handler := middleware.Logging()(middleware.Recovery()(http.FileServer(http.Dir(cfg.Dir))))

	return &Server{
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		listener:   nil,
		onServeErr: onServeErr,
	}, nil
}

// Address returns the address the server listens on. After Start it is the
// resolved listener address, which is useful when the config used port 0.
func (s *Server) Address() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.config.Address
}

// Start begins listening on TCP and serves HTTP requests in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	listener, err := listenCfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		slog.Error("failed to listen", "address", s.server.Addr, "error", err)

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.listener = listener

	slog.Info("starting preview server", "address", listener.Addr().String(), "dir", s.config.Dir)

	go func() {
		serveErr := s.server.Serve(listener)
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("preview server error", "error", serveErr)

			if s.onServeErr != nil {
				s.onServeErr()
			}
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info("stopping preview server")

	err := s.server.Shutdown(ctx)
	if err != nil {
		slog.Error("shutdown failed", "error", err)

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
