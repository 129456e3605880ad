// internal/game/types.go
//
// Core type definitions for the word-hunt game engine.
// Defines:
//   - Verdict: result of submitting a word (good/bad/dup).
//   - Game: state for a single in-progress or finished game.

package game

import (
	"time"

	"github.com/joelburton/tboggle/internal/board"
)

// Verdict classifies a submitted word.
// Possible values:
//   - "good": word is on the board's legal list and was credited.
//   - "bad":  word is not findable on this board (or too short).
//   - "dup":  word was already found; only found words dup.
type Verdict string

const (
	VerdictGood Verdict = "good"
	VerdictBad  Verdict = "bad"
	VerdictDup  Verdict = "dup"
)

// LengthFreq is one row of the words-by-length table shown during and
// after play: how many legal words exist at a length, and how many of
// them the player has found so far.
type LengthFreq struct {
	Length int
	Legal  int
	Found  int
}

// Game holds the state of a single game session.
type Game struct {
	ID        string           // Unique game identifier (random hex string).
	DiceSet   string           // Catalog name the board was rolled from ("" if restored).
	Width     int              // Board width in cells.
	Height    int              // Board height in cells.
	Board     string           // Face codes, row-major (e.g. "ADYERESTLPNAGIE1").
	Seed      int64            // RNG seed used to roll the board (0 if restored).
	Tries     int              // Boards rolled before this one qualified.
	MinLegal  int              // Shortest word length that counts.
	Duration  int              // Play time in seconds (advisory; client enforces).
	StartedAt time.Time        // When the session was created (UTC).
	Finished  bool             // True once the game is over.
	Scores    board.ScoreTable // Points by word length.

	Legal *board.WordSet // Every findable word on this board.
	Found *board.WordSet // Legal words the player has submitted.
	Bad   *board.WordSet // Rejected submissions, revealed in the end summary.
}
