package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func newGame(t *testing.T, w, h int, ms ...mines.Point) *mines.Game {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g, err := mines.New(
		mines.GameParams{Width: w, Height: h, MineCount: len(ms)},
		mines.WithMines(ms),
		mines.WithClock(func() time.Time { return start }),
	)
	require.NoError(t, err)
	return g
}

func TestCounter(t *testing.T) {
	assert.Equal(t, "000", Counter(0))
	assert.Equal(t, "042", Counter(42))
	assert.Equal(t, "999", Counter(1234))
	assert.Equal(t, "000", Counter(-5))
}

func TestRenderFreshBoard(t *testing.T) {
	g := newGame(t, 3, 3, mines.Point{X: 0, Y: 0})

	expected := strings.Join([]string{
		"001  :-)  000",
		"   0 1 2",
		"0  . . .",
		"1  . . .",
		"2  . . .",
		"",
	}, "\n")
	assert.Equal(t, expected, Render(g.Snapshot()))
}

func TestRenderPlaying(t *testing.T) {
	g := newGame(t, 4, 3, mines.Point{X: 0, Y: 0})
	g.FlagTile(3, 2)
	g.RevealTile(3, 0)
	g.SetPreview(0, 0)

	s := g.Snapshot()
	assert.Equal(t, ":-o", Face(s))
	assert.Equal(t, Flag, Cell(s, 3, 2))
	assert.Equal(t, Zero, Cell(s, 3, 0))
	assert.Equal(t, '1', Cell(s, 1, 1))
	assert.Equal(t, '1', Cell(s, 0, 1))
	assert.Equal(t, Pressed, Cell(s, 0, 0))
}

func TestRenderBoom(t *testing.T) {
	g := newGame(t, 3, 3, mines.Point{X: 0, Y: 0}, mines.Point{X: 2, Y: 2})
	g.FlagTile(2, 2)
	g.FlagTile(2, 0)
	g.RevealTile(0, 0)

	s := g.Snapshot()
	assert.Equal(t, "x_x", Face(s))
	assert.Equal(t, Exploded, Cell(s, 0, 0))
	assert.Equal(t, Flag, Cell(s, 2, 2))
	assert.Equal(t, WrongFlag, Cell(s, 2, 0))
	assert.Equal(t, '2', Cell(s, 1, 1))
}

func TestRenderVictory(t *testing.T) {
	g := newGame(t, 2, 1, mines.Point{X: 0, Y: 0})
	g.RevealTile(1, 0)

	s := g.Snapshot()
	assert.Equal(t, "B-)", Face(s))
	assert.Equal(t, Mine, Cell(s, 0, 0))
	assert.Equal(t, '1', Cell(s, 1, 0))
}
