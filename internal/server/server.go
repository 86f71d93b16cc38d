// Package server hosts the showcase over SSH. Every session gets its own
// Bubble Tea program with its own widget state.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/alexisbeaulieu97/streamui/internal/config"
	"github.com/alexisbeaulieu97/streamui/internal/logger"
	"github.com/alexisbeaulieu97/streamui/internal/tui/showcase"
)

const shutdownTimeout = 5 * time.Second

// Server wires the UI configuration, the session middleware and the wish
// server together.
type Server struct {
	cfg *config.Config
	log *logger.Logger
	ssh *ssh.Server
}

// New builds a server for cfg. The configuration is turned into a render
// context once up front so a broken theme fails here rather than per
// session.
func New(cfg *config.Config, log *logger.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	if _, err := cfg.ToRenderContext(); err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, log: log.Named("server")}

	address := cfg.Serve.Address
	if address == "" {
		address = config.DefaultServeAddress
	}
	hostKey := cfg.Serve.HostKeyPath
	if hostKey == "" {
		hostKey = config.DefaultHostKeyPath
	}

	opts := []ssh.Option{
		wish.WithAddress(address),
		wish.WithHostKeyPath(hostKey),
		wish.WithMiddleware(
			bubbletea.Middleware(s.programFor),
			activeterm.Middleware(),
			s.logSessions,
		),
	}
	if cfg.Serve.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Serve.IdleTimeout))
	}
	if cfg.Serve.MaxTimeout > 0 {
		opts = append(opts, wish.WithMaxTimeout(cfg.Serve.MaxTimeout))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build ssh server: %w", err)
	}
	s.ssh = srv

	return s, nil
}

// Address returns the listen address.
func (s *Server) Address() string {
	return s.ssh.Addr
}

// Run serves until ctx is cancelled, then shuts the server down.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.ssh.ListenAndServe()
	}()

	s.log.WithFields(map[string]any{"address": s.Address()}).Info("serving showcase")

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("stopping ssh server")
	if err := s.ssh.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to stop ssh server: %w", err)
	}
	return nil
}

// programFor builds the showcase for one session. A nil model makes the
// middleware fall through and end the session.
func (s *Server) programFor(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	m, err := showcase.NewModel(s.cfg)
	if err != nil {
		s.log.Error(err, "failed to build session model")
		return nil, nil
	}
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (s *Server) logSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		log := s.log.WithFields(map[string]any{
			"user":   sess.User(),
			"remote": sess.RemoteAddr().String(),
		})

		log.Info("session opened")
		next(sess)
		log.WithFields(map[string]any{"duration": time.Since(start).String()}).Info("session closed")
	}
}
