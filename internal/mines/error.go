package mines

import (
	"errors"
	"fmt"
)

var (
	ErrBoardSize = errors.New("board must be at least 1x1")
	ErrMineCount = errors.New("mine count must be in [0, width*height)")
	ErrMineList  = errors.New("invalid mine list")
)

// AssertionError reports a broken engine invariant. It is only ever
// raised through panic.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assertf(cond bool, format string, a ...any) {
	if !cond {
		panic(AssertionError{fmt.Sprintf(format, a...)})
	}
}
