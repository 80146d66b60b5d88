// Package console turns lines of text into engine commands.
package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Action int

const (
	Reveal Action = iota
	Flag
	Chord
	Hover
	Unhover
	Quit
)

var actions = map[string]Action{
	"r": Reveal, "reveal": Reveal,
	"f": Flag, "flag": Flag,
	"c": Chord, "chord": Chord,
	"h": Hover, "hover": Hover,
	"q": Quit, "quit": Quit,
}

var (
	ErrEmpty   = errors.New("empty command")
	ErrUnknown = errors.New("unknown command")
)

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func decodePosition(src map[string][]string) (Position, error) {
	positionDecoder := schema.NewDecoder()
	positionDecoder.IgnoreUnknownKeys(true)
	var pos Position
	err := positionDecoder.Decode(&pos, src)
	return pos, err
}

type Command struct {
	Action Action
	Position
}

// Parse reads one command line: an action word optionally followed by
// x and y. "h" without coordinates clears the hover.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	action, ok := actions[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknown, fields[0])
	}

	switch {
	case action == Quit:
		return Command{Action: Quit}, nil
	case action == Hover && len(fields) == 1:
		return Command{Action: Unhover}, nil
	case len(fields) != 3:
		return Command{}, fmt.Errorf("%s takes x and y", fields[0])
	}

	pos, err := decodePosition(map[string][]string{
		"x": {fields[1]},
		"y": {fields[2]},
	})
	if err != nil {
		return Command{}, fmt.Errorf("bad position: %w", err)
	}
	return Command{Action: action, Position: pos}, nil
}

// Apply runs the command against g. It reports false for Quit.
func (c Command) Apply(g *mines.Game) bool {
	switch c.Action {
	case Reveal:
		g.RevealTile(c.X, c.Y)
	case Flag:
		g.FlagTile(c.X, c.Y)
	case Chord:
		g.ChordTile(c.X, c.Y)
	case Hover:
		g.SetPreview(c.X, c.Y)
	case Unhover:
		g.ClearPreview()
	case Quit:
		return false
	}
	return true
}

const Help = `commands:
  r x y   reveal      f x y   toggle flag
  c x y   chord       h x y   hover (h alone clears)
  q       quit`
