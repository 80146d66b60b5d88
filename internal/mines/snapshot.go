package mines

// Snapshot is a read-only copy of everything a renderer draws in one
// frame.
type Snapshot struct {
	Width, Height  int
	Tiles          []Tile
	State          GameState
	MinesRemaining int
	ElapsedSeconds int
	Previewing     bool
	Highlighted    []bool
}

func (g *Game) Snapshot() Snapshot {
	tiles := make([]Tile, len(g.board.tiles))
	copy(tiles, g.board.tiles)

	highlighted := make([]bool, len(tiles))
	if g.IsPreviewing() {
		for i := range highlighted {
			highlighted[i] = g.PreviewAt(i%g.board.width, i/g.board.width)
		}
	}

	return Snapshot{
		Width:          g.board.width,
		Height:         g.board.height,
		Tiles:          tiles,
		State:          g.state,
		MinesRemaining: g.MinesRemaining(),
		ElapsedSeconds: g.ElapsedSeconds(),
		Previewing:     g.IsPreviewing(),
		Highlighted:    highlighted,
	}
}

func (s Snapshot) At(x, y int) Tile {
	return s.Tiles[y*s.Width+x]
}

func (s Snapshot) HighlightedAt(x, y int) bool {
	return s.Highlighted[y*s.Width+x]
}

// Exposed reports whether the tile's content should be shown. Once the
// game is over every tile is exposed.
func (s Snapshot) Exposed(x, y int) bool {
	return s.State.Terminal() || s.At(x, y).Revealed
}
