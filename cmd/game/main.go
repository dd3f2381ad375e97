package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/tomz197/starfall/internal/config"
	"github.com/tomz197/starfall/internal/loop"
	"github.com/tomz197/starfall/internal/object"
	"golang.org/x/term"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	tuning, err := config.LoadTuning(settings.TuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuning error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	client := loop.NewClient(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Tuning:   tuning,
		Rand:     object.NewRand(settings.Seed),
		Logger:   logger,
		Username: os.Getenv("USER"),
	})
	if err := client.Run(); err != nil {
		logger.Error().Err(err).Msg("game error")
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the configured log file, or nowhere: stdout and stderr
// belong to the raw-mode game screen.
func newLogger(settings config.Settings) (zerolog.Logger, func(), error) {
	if settings.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).
		Level(config.ParseLogLevel(settings.LogLevel)).
		With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
