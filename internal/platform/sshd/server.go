// Package sshd serves the game shell over SSH via Wish.
// Every connection gets its own game instance and line editor; all sessions
// share one score database.
package sshd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/vovakirdan/text-arcade/internal/cmdline"
	"github.com/vovakirdan/text-arcade/internal/core"
	"github.com/vovakirdan/text-arcade/internal/platform/shell"
	"github.com/vovakirdan/text-arcade/internal/registry"
	"github.com/vovakirdan/text-arcade/internal/storage"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// GameID selects the game every session plays.
	GameID string

	// Runtime is passed to the game factory. A zero Seed gives each
	// session its own world.
	Runtime core.RuntimeConfig

	// Logger defaults to a timestamped stderr logger.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
		GameID:      "rover",
		Runtime:     core.DefaultConfig(),
	}
}

// Server wraps a Wish SSH server for the arcade.
type Server struct {
	config Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// New creates a new SSH server with the given configuration.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	// Fail at startup on a bad game or game config, not per session
	if _, err := registry.Create(cfg.GameID, cfg.Runtime); err != nil {
		return nil, err
	}

	// Continue without storage, sessions still play
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.shellMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// shellMiddleware runs a game shell on the session. It never calls next:
// the shell owns the session until it ends.
func (s *Server) shellMiddleware(_ ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, windows, ok := sess.Pty()
		if !ok {
			wish.Fatalln(sess, "This arcade needs an interactive terminal, try: ssh -t")
			return
		}

		var width atomic.Int32
		width.Store(int32(pty.Window.Width))
		go func() {
			for w := range windows {
				width.Store(int32(w.Width))
			}
		}()

		rc := s.config.Runtime
		rc.ScreenW = pty.Window.Width
		rc.ScreenH = pty.Window.Height

		game, err := registry.Create(s.config.GameID, rc)
		if err != nil {
			s.logger.Error("cannot create game", "game", s.config.GameID, "error", err)
			wish.Fatalln(sess, "The game is unavailable right now.")
			return
		}

		out := NewCRLFWriter(sess)
		sh := shell.New(game, s.store, shell.Options{
			Out:    out,
			Player: sess.User(),
			Logger: s.logger.With("user", sess.User()),
		})

		rl, err := shell.NewReadline(shell.ReadlineConfig{
			Prompt:   "> ",
			Commands: cmdline.Names(sh.Commands()),
			Stdin:    sess,
			Stdout:   out,
			Stderr:   NewCRLFWriter(sess.Stderr()),
			Width:    func() int { return int(width.Load()) },
		})
		if err != nil {
			s.logger.Error("cannot start line editor", "error", err)
			wish.Fatalln(sess, "Could not start the session.")
			return
		}
		defer rl.Close()

		if err := sh.Run(sess.Context(), rl); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("session ended with error", "user", sess.User(), "error", err)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

func (s *Server) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// crlfWriter turns bare "\n" into "\r\n". SSH sessions have no line
// discipline on the server side, so the client sees raw bytes.
type crlfWriter struct {
	w    io.Writer
	last byte
}

// NewCRLFWriter wraps w with newline translation.
func NewCRLFWriter(w io.Writer) io.Writer {
	return &crlfWriter{w: w}
}

func (c *crlfWriter) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p)+8)
	prev := c.last
	for _, b := range p {
		if b == '\n' && prev != '\r' {
			buf = append(buf, '\r')
		}
		buf = append(buf, b)
		prev = b
	}

	if _, err := c.w.Write(buf); err != nil {
		return 0, err
	}
	if len(p) > 0 {
		c.last = p[len(p)-1]
	}
	return len(p), nil
}
