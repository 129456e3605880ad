// internal/board/sample.go
//
// Random board rolls. One sample shuffles the dice, drops one die per
// cell in row-major order, and draws a uniform face from each. A blank
// draw re-rolls that die until a playable face shows, so a finished
// board never carries a blank.

package board

import "math/rand/v2"

// rollGrid samples one board. The dice slice is not modified; the
// caller guarantees len(dice) == width*height. The same rng state
// always yields the same board.
func rollGrid(dice []Die, width, height int, rng *rand.Rand) Grid {
	order := make([]Die, len(dice))
	copy(order, dice)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	faces := make([]Face, width*height)
	for i := range faces {
		f := order[i][rng.IntN(facesPerDie)]
		for f.Blank() {
			f = order[i][rng.IntN(facesPerDie)]
		}
		faces[i] = f
	}
	return newGrid(faces, width, height)
}
