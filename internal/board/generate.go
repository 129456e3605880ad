// internal/board/generate.go
//
// Constraint-driven board generation: roll, solve, test, repeat.
// Attempts run sequentially and the first satisfying board wins, so a
// given seed always reproduces the same board and try count.

package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/joelburton/tboggle/internal/dict"
)

// Constraints bound the accepted boards. A negative Max means
// unbounded on that side.
type Constraints struct {
	MinWords   int
	MaxWords   int
	MinScore   int
	MaxScore   int
	MinLongest int
	MaxLongest int
	MinLegal   int // shortest word counted at all
	MaxTries   int // attempt budget; <= 0 exhausts immediately
}

// DefaultConstraints mirrors the interactive defaults: at least one
// scoring word, a three-letter minimum, no upper bounds.
func DefaultConstraints() Constraints {
	return Constraints{
		MinWords:   1,
		MaxWords:   -1,
		MinScore:   1,
		MaxScore:   -1,
		MinLongest: 3,
		MaxLongest: -1,
		MinLegal:   3,
		MaxTries:   100000,
	}
}

// satisfied checks a solved board against every bound.
func (c Constraints) satisfied(ws *WordSet) bool {
	if ws.Len() < c.MinWords {
		return false
	}
	if c.MaxWords >= 0 && ws.Len() > c.MaxWords {
		return false
	}
	if ws.Score() < c.MinScore {
		return false
	}
	if c.MaxScore >= 0 && ws.Score() > c.MaxScore {
		return false
	}
	if ws.Longest() < c.MinLongest {
		return false
	}
	if c.MaxLongest >= 0 && ws.Longest() > c.MaxLongest {
		return false
	}
	return true
}

// Result is an accepted board with its solution and provenance.
type Result struct {
	Grid  Grid
	Words *WordSet
	Tries int
	Seed  int64
}

// Generate rolls boards until one satisfies cons or the try budget
// runs out. On exhaustion the error is an *ExhaustedError carrying the
// number of attempts made; it matches ErrExhausted under errors.Is.
func Generate(dice []Die, width, height int, d *dict.Graph, scores ScoreTable, cons Constraints, seed int64) (*Result, error) {
	if len(dice) != width*height {
		return nil, fmt.Errorf("%w: %d dice for a %dx%d board", ErrDiceCount, len(dice), width, height)
	}
	for i, die := range dice {
		if !die.Playable() {
			return nil, fmt.Errorf("%w: die %d is all blanks", ErrInvalidDiceString, i)
		}
	}
	if err := scores.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	tries := 0
	for tries < cons.MaxTries {
		tries++
		g := rollGrid(dice, width, height, rng)
		ws, err := Solve(g, d, scores, cons.MinLegal)
		if err != nil {
			return nil, err
		}
		if cons.satisfied(ws) {
			return &Result{Grid: g, Words: ws, Tries: tries, Seed: seed}, nil
		}
	}
	return nil, &ExhaustedError{Tries: tries}
}
