package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreviewHiddenTarget(t *testing.T) {
	g, _ := newFixedGame(t, 3, 3, Point{0, 0})
	assert.False(t, g.IsPreviewing())
	assert.False(t, g.PreviewAt(1, 1))

	g.SetPreview(1, 1)

	assert.True(t, g.IsPreviewing())
	assert.True(t, g.PreviewAt(1, 1))
	// an unrevealed target highlights only itself
	assert.False(t, g.PreviewAt(0, 0))
	assert.False(t, g.PreviewAt(2, 2))
}

func TestPreviewRevealedNumberHighlightsNeighbours(t *testing.T) {
	g, _ := newFixedGame(t, 4, 4, Point{0, 0})
	g.RevealTile(1, 1)
	g.FlagTile(0, 1)
	g.SetPreview(1, 1)

	expected := map[Point]bool{
		{0, 0}: true, {1, 0}: true, {2, 0}: true,
		{0, 1}: false, {1, 1}: false, {2, 1}: true,
		{0, 2}: true, {1, 2}: true, {2, 2}: true,
		{3, 3}: false, {3, 0}: false, {1, 3}: false,
	}
	for p, want := range expected {
		assert.Equal(t, want, g.PreviewAt(p.X, p.Y), "%d:%d", p.X, p.Y)
	}
}

func TestPreviewRevealedZeroHighlightsNothing(t *testing.T) {
	g, _ := newFixedGame(t, 4, 4, Point{0, 0})
	g.FlagTile(3, 2)
	g.RevealTile(3, 3)
	g.SetPreview(3, 3)

	for y := range 4 {
		for x := range 4 {
			assert.False(t, g.PreviewAt(x, y), "%d:%d", x, y)
		}
	}
}

func TestPreviewFlaggedTargetKeepsPrevious(t *testing.T) {
	g, _ := newFixedGame(t, 3, 3, Point{0, 0})
	g.FlagTile(2, 2)
	g.SetPreview(1, 1)

	g.SetPreview(2, 2)

	target, ok := g.Preview()
	assert.True(t, ok)
	assert.Equal(t, Point{1, 1}, target)
	assert.True(t, g.PreviewAt(1, 1))
	assert.False(t, g.PreviewAt(2, 2))
}

func TestClearPreview(t *testing.T) {
	g, _ := newFixedGame(t, 3, 3, Point{0, 0})
	g.SetPreview(1, 1)

	g.ClearPreview()

	assert.False(t, g.IsPreviewing())
	assert.False(t, g.PreviewAt(1, 1))
}

func TestPreviewEndsWithGame(t *testing.T) {
	g, _ := newFixedGame(t, 3, 3, Point{0, 0})
	g.SetPreview(1, 1)

	g.RevealTile(0, 0)

	assert.False(t, g.IsPreviewing())
	assert.False(t, g.PreviewAt(1, 1))
	g.SetPreview(2, 2)
	assert.False(t, g.IsPreviewing())
}
