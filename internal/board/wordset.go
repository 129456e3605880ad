// internal/board/wordset.go
//
// WordSet accumulates distinct lowercase words with their running
// score, longest length, and per-length counts. The solver fills one
// for a board's legal words; the game engine reuses it for found and
// bad guesses.

package board

import "sort"

// WordSet is a scored set of lowercase words.
type WordSet struct {
	words   map[string]struct{}
	score   int
	longest int
	counts  map[int]int
}

// LengthCount is one row of a words-by-length tally.
type LengthCount struct {
	Length int
	Count  int
}

// NewWordSet returns an empty set.
func NewWordSet() *WordSet {
	return &WordSet{
		words:  make(map[string]struct{}),
		counts: make(map[int]int),
	}
}

// Add records word with its point value. Duplicates are ignored and
// return false; only a first addition counts toward score and tallies.
func (ws *WordSet) Add(word string, points int) bool {
	if _, ok := ws.words[word]; ok {
		return false
	}
	ws.words[word] = struct{}{}
	ws.score += points
	if n := len(word); n > ws.longest {
		ws.longest = n
	}
	ws.counts[len(word)]++
	return true
}

// Contains reports whether word is in the set.
func (ws *WordSet) Contains(word string) bool {
	_, ok := ws.words[word]
	return ok
}

// Len returns the number of distinct words.
func (ws *WordSet) Len() int { return len(ws.words) }

// Score returns the summed point value.
func (ws *WordSet) Score() int { return ws.score }

// Longest returns the length of the longest word, 0 when empty.
func (ws *WordSet) Longest() int { return ws.longest }

// Words returns the members sorted ascending.
func (ws *WordSet) Words() []string {
	out := make([]string, 0, len(ws.words))
	for w := range ws.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// LengthCounts returns the per-length tallies sorted by length.
func (ws *WordSet) LengthCounts() []LengthCount {
	out := make([]LengthCount, 0, len(ws.counts))
	for n, c := range ws.counts {
		out = append(out, LengthCount{Length: n, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Length < out[j].Length })
	return out
}
