// internal/game/engine.go
//
// Core game engine for a single word-hunt session.
// Responsibilities:
//   - Roll new boards from a dice-set catalog, subject to constraints.
//   - Rebuild sessions from a known board string (typed-in boards, tests).
//   - Judge submitted words: good (credited), bad (recorded), dup (ignored).
//   - Track the found/missed split and the running score.
//
// Notes:
//   - The dictionary graph is passed in; callers normally use dict.Default().
//   - Duration is advisory. The client owns the clock; the server only
//     refuses words after End() has been called.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joelburton/tboggle/internal/board"
	"github.com/joelburton/tboggle/internal/dict"
)

const (
	defaultDiceSet  = "4"
	defaultDuration = 120
)

var (
	// ErrFinished is returned for guesses against an ended game.
	ErrFinished = errors.New("game finished")
	// ErrInvalidWord is returned for empty or non-alphabetic submissions.
	ErrInvalidWord = errors.New("invalid word")
	// ErrUnknownDiceSet is returned when Options name a set not in the catalog.
	ErrUnknownDiceSet = errors.New("unknown dice set")
)

// Options configure New. The zero value rolls a standard 4x4 game.
type Options struct {
	DiceSet     string            // catalog name; defaults to "4"
	Board       string            // fixed face codes; skips rolling when set
	Duration    int               // seconds; defaults to 120
	Constraints board.Constraints // zero value means board.DefaultConstraints()
	Scores      board.ScoreTable  // nil means board.DefaultScores
	Seed        int64             // 0 means pick a random seed
}

// New constructs a new game instance.
// If opts.Board is empty, a board is rolled from the named dice set until
// it meets the constraints; otherwise the given board is solved as-is.
func New(d *dict.Graph, opts Options) (*Game, error) {
	name := opts.DiceSet
	if name == "" {
		name = defaultDiceSet
	}
	ds, ok := board.GetDiceSet(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDiceSet, name)
	}
	cons := opts.Constraints
	if cons == (board.Constraints{}) {
		cons = board.DefaultConstraints()
	}
	dur := opts.Duration
	if dur <= 0 {
		dur = defaultDuration
	}
	scores := opts.Scores
	if scores == nil {
		scores = board.DefaultScores
	}

	if opts.Board != "" {
		g, err := Restore(d, opts.Board, ds.Size, ds.Size, cons.MinLegal, scores)
		if err != nil {
			return nil, err
		}
		g.DiceSet = name
		g.Duration = dur
		return g, nil
	}

	seed := opts.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	res, err := board.Generate(ds.Dice, ds.Size, ds.Size, d, scores, cons, seed)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:        randomID(),
		DiceSet:   name,
		Width:     ds.Size,
		Height:    ds.Size,
		Board:     res.Grid.String(),
		Seed:      seed,
		Tries:     res.Tries,
		MinLegal:  cons.MinLegal,
		Duration:  dur,
		StartedAt: time.Now().UTC(),
		Scores:    scores,
		Legal:     res.Words,
		Found:     board.NewWordSet(),
		Bad:       board.NewWordSet(),
	}, nil
}

// Restore rebuilds a playable session from a known board string.
// Used for typed-in boards and for re-solving saved games. A nil
// scores table means the standard one.
func Restore(d *dict.Graph, faces string, width, height, minLegal int, scores board.ScoreTable) (*Game, error) {
	if scores == nil {
		scores = board.DefaultScores
	}
	grid, legal, err := board.Restore(faces, width, height, d, scores, minLegal)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:        randomID(),
		Width:     width,
		Height:    height,
		Board:     grid.String(),
		MinLegal:  minLegal,
		Duration:  defaultDuration,
		StartedAt: time.Now().UTC(),
		Scores:    scores,
		Legal:     legal,
		Found:     board.NewWordSet(),
		Bad:       board.NewWordSet(),
	}, nil
}

// ApplyGuess judges a submitted word, mutating the game state.
// Returns the verdict, the points credited (zero unless good), or an error.
//
// Judging rules:
//   - Game must not be finished.
//   - Word must be non-empty and alphabetic; case and padding are forgiven.
//   - Words already found are dups and score nothing.
//   - Words on the legal list are credited by length; everything else
//     reads bad, every time, and is recorded for the end summary.
func (g *Game) ApplyGuess(word string) (Verdict, int, error) {
	if g.Finished {
		return "", 0, ErrFinished
	}
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" || !isAlpha(w) {
		return "", 0, ErrInvalidWord
	}
	if g.Found.Contains(w) {
		return VerdictDup, 0, nil
	}
	if g.Legal.Contains(w) {
		pts := g.Scores[len(w)]
		g.Found.Add(w, pts)
		return VerdictGood, pts, nil
	}
	g.Bad.Add(w, 0)
	return VerdictBad, 0, nil
}

// End marks the game finished. Safe to call more than once.
func (g *Game) End() { g.Finished = true }

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		return "done"
	}
	return "playing"
}

// Missed lists legal words the player never found, sorted.
func (g *Game) Missed() []string {
	out := []string{}
	for _, w := range g.Legal.Words() {
		if !g.Found.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}

// LengthFreqs pairs, for each word length present on the board, the
// number of legal words with the number the player has found.
func (g *Game) LengthFreqs() []LengthFreq {
	found := map[int]int{}
	for _, c := range g.Found.LengthCounts() {
		found[c.Length] = c.Count
	}
	legal := g.Legal.LengthCounts()
	out := make([]LengthFreq, 0, len(legal))
	for _, c := range legal {
		out = append(out, LengthFreq{Length: c.Length, Legal: c.Count, Found: found[c.Length]})
	}
	return out
}

// TimeLeft reports whole seconds remaining at the given instant, floored at zero.
func (g *Game) TimeLeft(now time.Time) int {
	left := g.Duration - int(now.Sub(g.StartedAt).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// Rows renders the board with display faces for logs and text clients.
func (g *Game) Rows() []string {
	grid, err := board.ParseGrid(g.Board, g.Width, g.Height)
	if err != nil {
		return nil
	}
	return grid.Rows()
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// randomSeed draws a board seed from crypto/rand.
func randomSeed() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:]))
}
