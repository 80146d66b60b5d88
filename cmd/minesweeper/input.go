package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vancomm/minesweeper/internal/console"
)

// scanLines feeds lines from r into the returned channel, closing it on
// EOF. A blocked read cannot be cancelled, so this goroutine is left to
// die with the process.
func scanLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// readCommands parses lines and forwards valid commands. Parse errors
// are reported on out and otherwise ignored.
func readCommands(
	ctx context.Context,
	lines <-chan string,
	out io.Writer,
	cmds chan<- console.Command,
) error {
	defer close(cmds)
	for {
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return errQuit
			}
			line = l
		}

		cmd, err := console.Parse(line)
		if errors.Is(err, console.ErrEmpty) {
			continue
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmds <- cmd:
		}
		if cmd.Action == console.Quit {
			return errQuit
		}
	}
}
