package mines

import (
	"hash/maphash"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger = logrus.New()

// Game is the single mutable aggregate of a play session. It is not
// safe for concurrent use.
type Game struct {
	board     *Board
	mineCount int
	flagCount int
	revealed  int

	state      GameState
	preview    Point
	previewing bool

	safeFirstClick bool
	session        string

	rnd *rand.Rand
	now func() time.Time
	log *logrus.Entry
}

type Option func(*options)

type options struct {
	rnd            *rand.Rand
	now            func() time.Time
	logger         *logrus.Logger
	mines          []Point
	minesSet       bool
	safeFirstClick bool
}

func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMines places mines at exactly the given cells instead of at
// random. len(mines) must equal the mine count.
func WithMines(mines []Point) Option {
	return func(o *options) {
		o.mines = mines
		o.minesSet = true
	}
}

// WithFirstClickSafety moves a mine away from the first revealed cell.
func WithFirstClickSafety(enabled bool) Option {
	return func(o *options) { o.safeFirstClick = enabled }
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func New(params GameParams, opts ...Option) (*Game, error) {
	o := options{now: time.Now, logger: Log}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = newRand()
	}

	var (
		board *Board
		err   error
	)
	if o.minesSet {
		board, err = generateWith(params, o.mines)
	} else {
		board, err = Generate(params, o.rnd)
	}
	if err != nil {
		return nil, err
	}

	session := uuid.NewString()
	g := &Game{
		board:          board,
		mineCount:      params.MineCount,
		safeFirstClick: o.safeFirstClick,
		session:        session,
		rnd:            o.rnd,
		now:            o.now,
		log:            o.logger.WithField("session", session),
	}
	g.log.WithFields(logrus.Fields{
		"params":         params.Seed(),
		"safeFirstClick": o.safeFirstClick,
	}).Info("new game")
	return g, nil
}

func (g *Game) Width() int  { return g.board.width }
func (g *Game) Height() int { return g.board.height }

func (g *Game) Size() (width, height int) {
	return g.board.width, g.board.height
}

func (g *Game) Session() string { return g.session }

func (g *Game) MineCount() int { return g.mineCount }

func (g *Game) FlagCount() int { return g.flagCount }

// MinesRemaining is the mine count minus placed flags, floored at zero.
func (g *Game) MinesRemaining() int {
	return max(0, g.mineCount-g.flagCount)
}

const maxDisplaySeconds = 999

func (g *Game) ElapsedSeconds() int {
	secs := int(g.state.at(g.now()) / time.Second)
	return min(max(secs, 0), maxDisplaySeconds)
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) safeTiles() int {
	return len(g.board.tiles) - g.mineCount
}
