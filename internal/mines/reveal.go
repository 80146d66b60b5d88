package mines

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// RevealTile opens the tile at x, y. Opening a bomb ends the game,
// opening a zero tile opens the whole connected zero region and its
// numbered border. Flagged tiles and finished games are left alone.
func (g *Game) RevealTile(x, y int) {
	if g.state.Terminal() || !g.board.InBounds(x, y) {
		return
	}
	p := Point{x, y}
	t := g.board.tile(p)
	if t.Flagged || t.Revealed {
		g.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("reveal ignored")
		return
	}

	if !g.state.Started() {
		if g.safeFirstClick && t.Content.IsBomb() {
			to := g.board.relocateMine(p, g.rnd)
			g.log.WithFields(logrus.Fields{
				"from": p, "to": to,
			}).Debug("relocated first-click mine")
		}
		g.state.Start = g.now()
	}

	g.reveal(p)
}

// reveal opens p and floods outwards through zero tiles. A tile is
// marked revealed before it is queued, so no tile is visited twice.
func (g *Game) reveal(p Point) {
	t := g.board.tile(p)
	t.Revealed = true
	g.revealed++

	if t.Content.IsBomb() {
		g.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("bomb revealed")
		g.finish(Boom)
		return
	}

	var todo deque.Deque[Point]
	if t.Content == 0 {
		todo.PushBack(p)
	}
	for todo.Len() > 0 {
		cur := todo.PopBack()
		for _, n := range g.board.neighbors(cur) {
			nt := g.board.tile(n)
			if nt.Revealed || nt.Flagged {
				continue
			}
			assertf(!nt.Content.IsBomb(), "bomb next to zero tile at %d:%d", n.X, n.Y)
			nt.Revealed = true
			g.revealed++
			if nt.Content == 0 {
				todo.PushBack(n)
			}
		}
	}

	if g.revealed == g.safeTiles() {
		g.finish(Victory)
	}
}

// ChordTile opens every hidden neighbour of a revealed numbered tile
// once the number of flags around it matches its count.
func (g *Game) ChordTile(x, y int) {
	if g.state.Terminal() || !g.board.InBounds(x, y) {
		return
	}
	p := Point{x, y}
	t := g.board.At(x, y)
	if !t.Revealed || t.Content.Count() <= 0 {
		return
	}

	var (
		flags  = 0
		hidden = make([]Point, 0, 8)
	)
	for _, n := range g.board.neighbors(p) {
		switch nt := g.board.tile(n); {
		case nt.Flagged:
			flags++
		case !nt.Revealed:
			hidden = append(hidden, n)
		}
	}
	if flags != t.Content.Count() {
		g.log.WithFields(logrus.Fields{
			"x": x, "y": y, "flags": flags, "count": t.Content.Count(),
		}).Debug("chord ignored")
		return
	}

	for _, n := range hidden {
		if g.state.Terminal() {
			return
		}
		// an earlier flood may already have opened n
		if !g.board.tile(n).Revealed {
			g.reveal(n)
		}
	}
}
