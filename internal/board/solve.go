// internal/board/solve.go
//
// Exhaustive board search. A depth-first walk starts from every cell;
// the dictionary node is threaded through the recursion so each letter
// step is one array index, and a branch dies the moment it stops being
// a prefix of any word.
//
// A two-letter face is consumed one letter at a time, with a word check
// after each letter: a word may end between the two letters of a face.
// Recording a word never stops the walk, since it may still be the
// stem of something longer.

package board

import (
	"fmt"
	"strings"

	"github.com/joelburton/tboggle/internal/dict"
)

// Solve finds every dictionary word traceable on the grid.
// Words shorter than minLegal are skipped. The score table must cover
// the longest word found or solving fails with ErrInvalidScoreTable.
func Solve(g Grid, d *dict.Graph, scores ScoreTable, minLegal int) (*WordSet, error) {
	if err := scores.Validate(); err != nil {
		return nil, err
	}
	s := &solver{
		grid:     g,
		dict:     d,
		scores:   scores,
		minLegal: minLegal,
		visited:  make([]bool, g.Cells()),
		found:    NewWordSet(),
	}
	for cell := range g.Faces {
		if err := s.walk(cell, 0); err != nil {
			return nil, err
		}
	}
	return s.found, nil
}

// Restore rebuilds the word set for an exact board, for replaying a
// saved game. No randomness is involved.
func Restore(faces string, width, height int, d *dict.Graph, scores ScoreTable, minLegal int) (Grid, *WordSet, error) {
	g, err := ParseGrid(faces, width, height)
	if err != nil {
		return Grid{}, nil, err
	}
	ws, err := Solve(g, d, scores, minLegal)
	if err != nil {
		return Grid{}, nil, err
	}
	return g, ws, nil
}

type solver struct {
	grid     Grid
	dict     *dict.Graph
	scores   ScoreTable
	minLegal int
	visited  []bool
	word     []byte
	found    *WordSet
}

// walk extends the current word with the face at cell, then recurses
// into unvisited neighbors. node is the dictionary position before
// this cell's letters.
func (s *solver) walk(cell int, node int32) error {
	letters := s.grid.Faces[cell].Letters()

	// Consume the face letter by letter, checking for a completed word
	// after each one.
	n := node
	taken := 0
	for i := 0; i < len(letters); i++ {
		n = s.dict.Child(n, letters[i])
		if n == 0 {
			s.word = s.word[:len(s.word)-taken]
			return nil
		}
		s.word = append(s.word, letters[i])
		taken++
		if s.dict.IsWord(n) {
			if err := s.record(); err != nil {
				return err
			}
		}
	}

	s.visited[cell] = true
	for _, nb := range s.grid.adj[cell] {
		if s.visited[nb] {
			continue
		}
		if err := s.walk(nb, n); err != nil {
			return err
		}
	}
	s.visited[cell] = false
	s.word = s.word[:len(s.word)-taken]
	return nil
}

// record adds the current word if it is long enough to count.
func (s *solver) record() error {
	n := len(s.word)
	if n < s.minLegal {
		return nil
	}
	if n >= len(s.scores) {
		return fmt.Errorf("%w: no score for %d-letter word %q", ErrInvalidScoreTable, n, s.word)
	}
	s.found.Add(strings.ToLower(string(s.word)), s.scores[n])
	return nil
}
