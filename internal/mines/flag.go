package mines

import "github.com/sirupsen/logrus"

// FlagTile toggles the flag on a hidden tile. Flags are not capped by
// the mine count; MinesRemaining floors at zero instead.
func (g *Game) FlagTile(x, y int) {
	if g.state.Terminal() || !g.board.InBounds(x, y) {
		return
	}
	t := g.board.tile(Point{x, y})
	if t.Revealed {
		return
	}
	t.Flagged = !t.Flagged
	if t.Flagged {
		g.flagCount++
	} else {
		g.flagCount--
	}
	g.log.WithFields(logrus.Fields{
		"x": x, "y": y, "flagged": t.Flagged, "flags": g.flagCount,
	}).Debug("flag toggled")
}
