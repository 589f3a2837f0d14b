package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/vendly/edge/pkg/logger"
)

type config struct {
	addr              string
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	startHooks        []Hook
	stopHooks         []Hook
}

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	cfg *config

	mu  sync.Mutex
	srv *http.Server
}

// New returns a Server listening on :8080 unless WithAddr says otherwise.
func New(opts ...Option) *Server {
	cfg := &config{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   10 * time.Second,
		logger:            logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves on ln until ctx is done, then shuts down gracefully. It
// closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.cfg.readHeaderTimeout,
		ReadTimeout:       s.cfg.readTimeout,
		WriteTimeout:      s.cfg.writeTimeout,
		IdleTimeout:       s.cfg.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.cfg.logger.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	addr := ln.Addr().String()
	for _, h := range s.cfg.startHooks {
		h(ctx, addr)
	}
	s.cfg.logger.InfoContext(ctx, "http server listening", slog.String("addr", addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		if shutdownErr := s.shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			err = shutdownErr
		}
		if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
			err = serveErr
		}
	}

	for _, h := range s.cfg.stopHooks {
		h(context.WithoutCancel(ctx), addr)
	}
	s.cfg.logger.InfoContext(ctx, "http server stopped", slog.String("addr", addr))

	switch {
	case err == nil, errors.Is(err, http.ErrServerClosed):
		return nil
	case errors.Is(err, ErrShutdown):
		return err
	default:
		return errors.Join(ErrStart, err)
	}
}

func (s *Server) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
