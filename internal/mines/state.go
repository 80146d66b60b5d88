package mines

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Phase int8

const (
	Playing Phase = iota
	Victory
	Boom
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Boom:
		return "boom"
	default:
		return "unknown"
	}
}

// GameState is Playing with an optional start time, or one of the
// terminal phases with the elapsed time frozen at the transition.
type GameState struct {
	Phase   Phase
	Start   time.Time     // zero until the first reveal while Playing
	Elapsed time.Duration // set once terminal
}

func (s GameState) Started() bool {
	return !s.Start.IsZero()
}

func (s GameState) Terminal() bool {
	return s.Phase != Playing
}

// at returns the time spent in the game as seen at now.
func (s GameState) at(now time.Time) time.Duration {
	switch s.Phase {
	case Playing:
		if !s.Started() {
			return 0
		}
		return max(0, now.Sub(s.Start))
	default:
		return s.Elapsed
	}
}

// finish moves a Playing game into a terminal phase.
//
// panics [AssertionError]
func (g *Game) finish(phase Phase) {
	assertf(g.state.Phase == Playing, "%s reached from %s", phase, g.state.Phase)
	assertf(phase != Playing, "finish called with playing phase")

	g.state = GameState{
		Phase:   phase,
		Start:   g.state.Start,
		Elapsed: g.state.at(g.now()),
	}
	g.previewing = false

	g.log.WithFields(logrus.Fields{
		"state":    phase.String(),
		"elapsed":  g.state.Elapsed.String(),
		"revealed": g.revealed,
		"flags":    g.flagCount,
	}).Info("game over")
}
