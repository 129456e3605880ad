// internal/board/errors.go
//
// Error taxonomy for board parsing, solving, and generation.
// Callers match these with errors.Is; messages carry the offending
// detail via fmt wrapping.

package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDiceString reports a face string that cannot form a
	// board: wrong length, an unknown symbol, or a blank face.
	ErrInvalidDiceString = errors.New("board: invalid dice string")

	// ErrInvalidScoreTable reports a score table that is empty or too
	// short for a word found on the board.
	ErrInvalidScoreTable = errors.New("board: invalid score table")

	// ErrDiceCount reports a dice list whose length does not match the
	// requested board dimensions.
	ErrDiceCount = errors.New("board: dice count does not match board size")

	// ErrExhausted reports that no sampled board satisfied the
	// constraints within the try budget.
	ErrExhausted = errors.New("board: generation exhausted")
)

// ExhaustedError carries the number of attempts actually made before
// Generate gave up. It matches ErrExhausted under errors.Is.
type ExhaustedError struct {
	Tries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("board: no qualifying board after %d tries", e.Tries)
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }
