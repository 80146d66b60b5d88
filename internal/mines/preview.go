package mines

// SetPreview points the hover preview at x, y. Hovering a flagged tile
// keeps whatever target was set before.
func (g *Game) SetPreview(x, y int) {
	if g.state.Terminal() || !g.board.InBounds(x, y) {
		return
	}
	if g.board.At(x, y).Flagged {
		return
	}
	g.preview = Point{x, y}
	g.previewing = true
}

func (g *Game) ClearPreview() {
	if g.state.Terminal() {
		return
	}
	g.previewing = false
}

func (g *Game) IsPreviewing() bool {
	return g.state.Phase == Playing && g.previewing
}

// Preview returns the current hover target, if any.
func (g *Game) Preview() (Point, bool) {
	return g.preview, g.IsPreviewing()
}

// PreviewAt reports whether x, y should be drawn pressed: the hovered
// tile itself while hidden, or every hidden neighbour of a hovered
// revealed number (the cells a chord would open).
func (g *Game) PreviewAt(x, y int) bool {
	if !g.IsPreviewing() || !g.board.InBounds(x, y) {
		return false
	}
	target := g.board.At(g.preview.X, g.preview.Y)
	cell := g.board.At(x, y)

	if (Point{x, y}) == g.preview {
		return cell.Hidden()
	}
	return chebyshev(g.preview, Point{x, y}) <= 1 &&
		cell.Hidden() &&
		target.Revealed &&
		target.Content.Count() > 0
}

func chebyshev(a, b Point) int {
	return max(absDiff(a.X, b.X), absDiff(a.Y, b.Y))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
