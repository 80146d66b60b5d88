package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minesweeper/internal/console"
)

func TestReadCommands(t *testing.T) {
	input := strings.NewReader("r 1 1\n\nbogus\nf 2 2\nq\nr 0 0\n")
	var out bytes.Buffer
	cmds := make(chan console.Command, 8)

	err := readCommands(context.Background(), scanLines(input), &out, cmds)
	assert.ErrorIs(t, err, errQuit)

	var got []console.Command
	for cmd := range cmds {
		got = append(got, cmd)
	}
	assert.Equal(t, []console.Command{
		{Action: console.Reveal, Position: console.Position{X: 1, Y: 1}},
		{Action: console.Flag, Position: console.Position{X: 2, Y: 2}},
		{Action: console.Quit},
	}, got)
	assert.Contains(t, out.String(), "unknown command")
}

func TestReadCommandsEOF(t *testing.T) {
	cmds := make(chan console.Command, 1)

	err := readCommands(context.Background(), scanLines(strings.NewReader("r 1 1")), &bytes.Buffer{}, cmds)

	assert.ErrorIs(t, err, errQuit)
	assert.Len(t, cmds, 1)
}
