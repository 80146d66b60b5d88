package mines

import (
	"fmt"
	"math/rand/v2"
)

// Board is a fixed-size grid of tiles stored row-major, index y*width+x.
type Board struct {
	width, height int
	tiles         []Tile
}

func newBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) tile(p Point) *Tile {
	return &b.tiles[b.index(p.X, p.Y)]
}

// At returns a copy of the tile at x, y.
func (b *Board) At(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

// neighbors lists the in-bounds cells around p, row by row from the
// top-left corner, excluding p itself.
func (b *Board) neighbors(p Point) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := p.X+dx, p.Y+dy
			if (dx != 0 || dy != 0) && b.InBounds(x, y) {
				ns = append(ns, Point{x, y})
			}
		}
	}
	return ns
}

func (b *Board) countBombs(p Point) int {
	c := 0
	for _, n := range b.neighbors(p) {
		if b.tile(n).Content.IsBomb() {
			c++
		}
	}
	return c
}

// panics [AssertionError]
func (b *Board) placeMine(p Point) {
	t := b.tile(p)
	assertf(!t.Content.IsBomb(), "mine already placed at %d:%d", p.X, p.Y)
	t.Content = Bomb
	for _, n := range b.neighbors(p) {
		if nt := b.tile(n); !nt.Content.IsBomb() {
			nt.Content = Empty(nt.Content.Count() + 1)
		}
	}
}

// panics [AssertionError]
func (b *Board) removeMine(p Point) {
	t := b.tile(p)
	assertf(t.Content.IsBomb(), "no mine to remove at %d:%d", p.X, p.Y)
	t.Content = Empty(b.countBombs(p))
	for _, n := range b.neighbors(p) {
		if nt := b.tile(n); !nt.Content.IsBomb() {
			nt.Content = Empty(nt.Content.Count() - 1)
		}
	}
}

// relocateMine moves the mine at from onto a random mine-free tile other
// than from. The board must have at least one such tile.
func (b *Board) relocateMine(from Point, r *rand.Rand) Point {
	candidates := make([]Point, 0, len(b.tiles))
	for y := range b.height {
		for x := range b.width {
			p := Point{x, y}
			if p != from && !b.tile(p).Content.IsBomb() {
				candidates = append(candidates, p)
			}
		}
	}
	assertf(len(candidates) > 0, "no free tile to relocate mine at %d:%d", from.X, from.Y)
	to := candidates[r.IntN(len(candidates))]
	b.removeMine(from)
	b.placeMine(to)
	return to
}

func (b *Board) mines() []Point {
	var ps []Point
	for i, t := range b.tiles {
		if t.Content.IsBomb() {
			ps = append(ps, Point{i % b.width, i / b.width})
		}
	}
	return ps
}

// Generate builds a board with params.MineCount mines drawn uniformly
// at random, retrying cells that already hold a mine.
func Generate(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	width, height, mineCount := params.Unpack()
	b := newBoard(width, height)
	for placed := 0; placed < mineCount; {
		p := Point{r.IntN(width), r.IntN(height)}
		if b.tile(p).Content.IsBomb() {
			continue
		}
		b.placeMine(p)
		placed++
	}
	return b, nil
}

// generateWith builds a board holding exactly the given mines.
func generateWith(params GameParams, mines []Point) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != params.MineCount {
		return nil, fmt.Errorf(
			"%w: %d mines listed, want %d", ErrMineList, len(mines), params.MineCount,
		)
	}
	b := newBoard(params.Width, params.Height)
	for _, p := range mines {
		if !b.InBounds(p.X, p.Y) {
			return nil, fmt.Errorf("%w: %d:%d out of bounds", ErrMineList, p.X, p.Y)
		}
		if b.tile(p).Content.IsBomb() {
			return nil, fmt.Errorf("%w: duplicate mine at %d:%d", ErrMineList, p.X, p.Y)
		}
		b.placeMine(p)
	}
	return b, nil
}
