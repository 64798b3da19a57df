package greeting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"portfolio/internal/logging"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Server struct {
	addr   string
	logger *logging.Logger
	ready  chan net.Addr
}

func NewServer(addr string, logger *logging.Logger) *Server {
	return &Server{
		addr:   addr,
		logger: logger,
		ready:  make(chan net.Addr, 1),
	}
}

// Ready yields the bound address once the listener is open.
func (s *Server) Ready() <-chan net.Addr {
	return s.ready
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully. Listen failures are returned immediately.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	srv := &http.Server{
		Handler:           NewHandler(s.logger),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          s.logger.StdLogger(slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("greeting service listening", logging.Field("addr", ln.Addr().String()))
	s.ready <- ln.Addr()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	<-serveErr
	s.logger.Info("greeting service stopped")
	return nil
}
