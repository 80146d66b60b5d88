// Package view draws engine snapshots as plain text.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	Hidden      = '.'
	Flag        = 'F'
	Pressed     = 'o'
	Zero        = ' '
	Mine        = '*'
	Exploded    = '#'
	WrongFlag   = 'X'
	columnWidth = 2
)

// Face mirrors the smiley above the classic board.
func Face(s mines.Snapshot) string {
	switch s.State.Phase {
	case mines.Boom:
		return "x_x"
	case mines.Victory:
		return "B-)"
	default:
		if s.Previewing {
			return ":-o"
		}
		return ":-)"
	}
}

// Counter formats n on three digits like the seven-segment displays.
func Counter(n int) string {
	return fmt.Sprintf("%03d", min(max(n, 0), 999))
}

func Cell(s mines.Snapshot, x, y int) rune {
	t := s.At(x, y)
	if !s.Exposed(x, y) {
		switch {
		case t.Flagged:
			return Flag
		case s.HighlightedAt(x, y):
			return Pressed
		default:
			return Hidden
		}
	}
	switch {
	case t.Content.IsBomb() && t.Revealed:
		return Exploded
	case t.Content.IsBomb() && t.Flagged:
		return Flag
	case t.Content.IsBomb():
		return Mine
	case t.Flagged:
		return WrongFlag
	case t.Content == 0:
		return Zero
	default:
		return rune('0' + t.Content.Count())
	}
}

// Render draws the header line, a column ruler and one line per row.
func Render(s mines.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n",
		Counter(s.MinesRemaining), Face(s), Counter(s.ElapsedSeconds))

	gutter := len(strconv.Itoa(s.Height - 1))
	b.WriteString(strings.Repeat(" ", gutter+1))
	for x := range s.Width {
		fmt.Fprintf(&b, "%*d", columnWidth, x%100)
	}
	b.WriteByte('\n')

	for y := range s.Height {
		fmt.Fprintf(&b, "%*d ", gutter, y)
		for x := range s.Width {
			fmt.Fprintf(&b, "%*c", columnWidth, Cell(s, x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
