// internal/board/score.go
//
// Word scoring. A ScoreTable maps word length to points by index;
// index 0..2 are zero in the standard table because three letters is
// the usual legal minimum.

package board

import "fmt"

// ScoreTable holds points by word length.
type ScoreTable []int

// DefaultScores is the standard table: 3–4 letters score 1, 5 letters
// 2, 6 letters 3, 7 letters 5, and 8+ letters 11, up to the longest
// word a 4x4 board can hold.
var DefaultScores = ScoreTable{0, 0, 0, 1, 1, 2, 3, 5, 11, 11, 11, 11, 11, 11, 11, 11, 11}

// Validate rejects a table that cannot score anything.
func (t ScoreTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidScoreTable)
	}
	for i, pts := range t {
		if pts < 0 {
			return fmt.Errorf("%w: negative score %d at length %d", ErrInvalidScoreTable, pts, i)
		}
	}
	return nil
}
