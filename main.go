package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grid-snake/game"
	"grid-snake/game/loop"
	"grid-snake/ui"
	"grid-snake/ui/term"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := game.DefaultConfig()
	width := flag.Int("width", defaults.Width, "Grid width in cells")
	height := flag.Int("height", defaults.Height, "Grid height in cells")
	speed := flag.Int("speed", 40, "Tick interval in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	uiKind := flag.String("ui", "window", "Front end: window or terminal")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	closer, err := setupLogging(*logLevel, *logFile, *uiKind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closer.Close()

	cfg := game.Config{
		Width:       *width,
		Height:      *height,
		InitialBody: defaults.InitialBody,
		Seed:        *seed,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := runGame(cfg, *uiKind, time.Duration(*speed)*time.Millisecond); err != nil {
		log.Error().Err(err).Msg("Game stopped")
		closer.Close()
		os.Exit(1)
	}
}

func runGame(cfg game.Config, uiKind string, interval time.Duration) error {
	var (
		fe  loop.Frontend
		err error
	)
	switch uiKind {
	case "window":
		fe, err = ui.NewWindow(cfg.Grid())
	case "terminal":
		fe, err = term.NewTerminal(cfg.Grid())
	default:
		return fmt.Errorf("unknown ui %q", uiKind)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", uiKind, err)
	}
	defer func() {
		if err := fe.Close(); err != nil {
			log.Warn().Err(err).Msg("Closing the front end")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("ui", uiKind).Dur("interval", interval).Msg("Starting the Snake Game")
	return loop.NewRunner(fe, cfg, interval).Run(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging points the global logger at stderr, or at a file. The
// terminal front end owns the screen, so without a file it logs nowhere.
func setupLogging(level, file, uiKind string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return f, nil
	case uiKind == "terminal":
		log.Logger = zerolog.Nop()
	default:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger()
	}
	return nopCloser{}, nil
}
