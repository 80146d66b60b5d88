package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
)

func newLogger(development bool) *slog.Logger {
	if development {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func setupEngineLogging(development bool) {
	mines.Log.SetOutput(os.Stderr)
	if development {
		mines.Log.SetLevel(logrus.DebugLevel)
		mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		mines.Log.SetLevel(logrus.InfoLevel)
		mines.Log.SetFormatter(&logrus.JSONFormatter{})
	}
}

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		os.Exit(1)
	}

	logger := newLogger(settings.Development)
	setupEngineLogging(settings.Development)

	params, err := config.ParseGameParams(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Error("rejected game params", "args", os.Args[1:], "error", err)
		os.Exit(1)
	}

	game, err := mines.New(params,
		mines.WithRand(config.NewRand(settings.Seed)),
		mines.WithFirstClickSafety(settings.SafeFirstClick),
	)
	if err != nil {
		logger.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	logger.Info("game ready",
		slog.String("params", params.Seed()),
		slog.String("session", game.Session()),
		slog.Int("fps", settings.FPS),
	)
	fmt.Fprintln(os.Stdout, console.Help)

	cmds := make(chan console.Command)
	loop := &frameLoop{
		game:   game,
		cmds:   cmds,
		out:    os.Stdout,
		frame:  time.Second / time.Duration(settings.FPS),
		logger: logger,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readCommands(gCtx, scanLines(os.Stdin), os.Stdout, cmds)
	})
	g.Go(func() error {
		return loop.run(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		logger.Info("exit reason", "error", err)
	}
}
