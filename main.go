package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"the-snake/game"
	"the-snake/game/types"
	"the-snake/term"
	"the-snake/ui"
)

const defaultLogPath = "logs/snake.log"

// backend is a drawing surface that also supplies input
type backend interface {
	types.Surface
	game.InputSource
	Close()
}

func main() {
	backendName := flag.String("backend", "raylib", "Display backend: raylib or term")
	seed := flag.Uint64("seed", 0, "Seed for apple placement (0 = time based)")
	debugLog := flag.Bool("debug", false, "Write logs to the log file")
	logPath := flag.String("log", defaultLogPath, "Log file used with -debug")
	flag.Parse()

	logger, logFile, err := setupLogging(*debugLog, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(*backendName, *seed, logger); err != nil {
		logger.Error("snake exited", slog.Any("err", err))
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(backendName string, seed uint64, logger *slog.Logger) error {
	b, err := openBackend(backendName)
	if err != nil {
		return err
	}

	// The display is restored before a crash is reported
	defer func() {
		r := recover()
		b.Close()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\nsnake crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []game.Option{game.WithLogger(logger)}
	if seed != 0 {
		opts = append(opts, game.WithSeed(seed))
	}
	g := game.NewGame(opts...)

	err = g.Run(ctx, b, b, game.NewTickClock())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openBackend(name string) (backend, error) {
	switch name {
	case "raylib":
		return ui.NewRenderer(types.DefaultGrid, "Snake")
	case "term":
		return term.New()
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// setupLogging returns a logger writing to path when debug is set. Without
// debug everything is discarded and no file is created.
func setupLogging(debug bool, path string) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f, nil
}
