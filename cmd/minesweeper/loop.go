package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/view"
)

var errQuit = errors.New("quit")

// frameLoop owns the game: commands are applied and frames drawn from
// this goroutine only.
type frameLoop struct {
	game   *mines.Game
	cmds   <-chan console.Command
	out    io.Writer
	frame  time.Duration
	logger *slog.Logger

	last  string
	ended bool
}

func (l *frameLoop) run(ctx context.Context) error {
	ticker := time.NewTicker(l.frame)
	defer ticker.Stop()

	if err := l.draw(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-l.cmds:
			if !ok || !cmd.Apply(l.game) {
				return errors.Join(errQuit, l.draw())
			}
		case <-ticker.C:
			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

// draw writes the current frame if it differs from the last one.
func (l *frameLoop) draw() error {
	snapshot := l.game.Snapshot()
	if snapshot.State.Terminal() && !l.ended {
		l.ended = true
		l.logger.Info("game finished",
			slog.String("state", snapshot.State.Phase.String()),
			slog.Int("seconds", snapshot.ElapsedSeconds),
		)
	}

	frame := view.Render(snapshot)
	if frame == l.last {
		return nil
	}
	l.last = frame
	_, err := io.WriteString(l.out, frame)
	return err
}
