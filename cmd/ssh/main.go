package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/rs/zerolog"
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/draw"
	"github.com/tomz197/starfall/internal/loop"
	"github.com/tomz197/starfall/internal/object"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	log = log.Level(config.ParseLogLevel(settings.LogLevel))

	tuning, err := config.LoadTuning(settings.TuningPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", settings.TuningPath).Msg("failed to load tuning")
	}

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		log.Warn().Err(workErr).Msg("failed to get working directory")
	}
	log.Info().
		Str("host", settings.SSHHost).
		Str("port", settings.SSHPort).
		Str("hostKeyPath", settings.SSHHostKeyPath).
		Str("workingDir", workingDir).
		Msg("SSH config")

	lobby := loop.NewLobby()
	sessions := &sessionHandler{
		lobby:  lobby,
		tuning: tuning,
		seed:   settings.Seed,
		log:    log,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			sessions.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSHHostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Str("addr", s.Addr).Msg("starting SSH server")
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-done
	log.Info().Int("sessions", lobby.Count()).Msg("shutting down, notifying connected players")

	if remaining := lobby.Shutdown(15 * time.Second); remaining > 0 {
		log.Warn().Int("sessions", remaining).Msg("sessions still connected after shutdown grace period")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}

// sessionHandler runs one independent game per SSH session.
type sessionHandler struct {
	lobby  *loop.Lobby
	tuning config.Tuning
	seed   int64
	log    zerolog.Logger
}

// middleware handles SSH sessions and runs the game client.
func (h *sessionHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log := h.log.With().Str("user", sess.User()).Logger()
		log.Info().
			Str("terminal", pty.Term).
			Int("width", pty.Window.Width).
			Int("height", pty.Window.Height).
			Msg("new game session")

		// Track window size changes for the renderer.
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		client := loop.NewClient(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc:   sizeTracker.getSize,
			Tuning:         h.tuning,
			Rand:           object.NewRand(h.seed),
			Logger:         h.log,
			Lobby:          h.lobby,
			Username:       sess.User(),
			IdleWarn:       loop.InactivityWarnUser,
			IdleDisconnect: loop.InactivityDisconnectUser,
		})
		if err := client.Run(); err != nil {
			log.Error().Err(err).Msg("game error")
		}

		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
