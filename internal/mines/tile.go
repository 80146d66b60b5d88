package mines

import "strconv"

// Content is either Bomb or the number of bombs among a tile's
// neighbours (0 to 8).
type Content int8

const Bomb Content = -1

func Empty(n int) Content {
	assertf(0 <= n && n <= 8, "neighbour count %d out of [0, 8]", n)
	return Content(n)
}

func (c Content) IsBomb() bool {
	return c == Bomb
}

// Count returns the neighbouring bomb count, or -1 for a bomb.
func (c Content) Count() int {
	return int(c)
}

func (c Content) String() string {
	if c == Bomb {
		return "bomb"
	}
	return "empty(" + strconv.Itoa(int(c)) + ")"
}

type Tile struct {
	Content  Content
	Revealed bool
	Flagged  bool
}

// Hidden reports whether the tile is neither revealed nor flagged.
func (t Tile) Hidden() bool {
	return !t.Revealed && !t.Flagged
}

type Point struct {
	X, Y int
}
