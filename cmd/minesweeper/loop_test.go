package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
)

func newTestLoop(t *testing.T, cmds <-chan console.Command, out io.Writer) *frameLoop {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g, err := mines.New(
		mines.GameParams{Width: 3, Height: 3, MineCount: 1},
		mines.WithMines([]mines.Point{{X: 0, Y: 0}}),
		mines.WithClock(func() time.Time { return start }),
	)
	require.NoError(t, err)
	return &frameLoop{
		game:   g,
		cmds:   cmds,
		out:    out,
		frame:  time.Millisecond,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFrameLoopAppliesCommandsUntilQuit(t *testing.T) {
	cmds := make(chan console.Command)
	var out bytes.Buffer
	loop := newTestLoop(t, cmds, &out)

	done := make(chan error, 1)
	go func() { done <- loop.run(context.Background()) }()

	cmds <- console.Command{Action: console.Reveal, Position: console.Position{X: 0, Y: 0}}
	cmds <- console.Command{Action: console.Quit}

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errQuit)
	case <-time.After(5 * time.Second):
		t.Fatal("frame loop did not stop")
	}

	assert.Equal(t, mines.Boom, loop.game.State().Phase)
	assert.True(t, loop.ended)
	assert.True(t, strings.HasPrefix(out.String(), "001  :-)  000\n"))
}

func TestFrameLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := newTestLoop(t, make(chan console.Command), io.Discard)
	cancel()

	assert.ErrorIs(t, loop.run(ctx), context.Canceled)
}

func TestFrameLoopSkipsUnchangedFrames(t *testing.T) {
	var out bytes.Buffer
	loop := newTestLoop(t, nil, &out)

	require.NoError(t, loop.draw())
	first := out.Len()
	require.NoError(t, loop.draw())

	assert.Equal(t, first, out.Len())
}
