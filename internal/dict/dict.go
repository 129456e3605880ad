// internal/dict/dict.go
//
// Word dictionary for the board solver, stored as an arena-backed
// prefix tree.
//
// Responsibilities:
//   - Build the tree from a word list (A–Z only, uppercased on entry).
//   - O(1) child lookup per letter, the hot operation of the board search.
//   - Load lists from environment-provided files or fall back to the
//     embedded default (assets/words.txt).
//
// Layout:
//   - Nodes live in one flat slice; a node is addressed by its index.
//   - Index 0 is the root. A child slot of 0 means "no child" (nothing
//     ever points back at the root), so the zero value is the absence
//     sentinel.
//   - Each node carries a 26-way child table plus a terminal flag, so a
//     letter step is a single array index instead of a sibling scan.
//
// Initialization behavior (Init):
//   1. If WORDS_FILE is set, load that file.
//   2. Otherwise fall back to the embedded default list.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words must be ASCII letters only; anything else fails the build.
//   • The graph is immutable after Build and safe for concurrent reads.
//   • Initialization is run once (sync.Once).

package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/joelburton/tboggle/assets"
)

// ErrInvalidWordList is returned when the word list source cannot be
// read or contains an entry with characters outside A–Z.
var ErrInvalidWordList = errors.New("dict: invalid word list")

// node is one arena slot. children[k] is the index of the child for
// letter 'A'+k, or 0 when there is no such child.
type node struct {
	children [26]int32
	terminal bool
}

// Graph is an immutable prefix tree over uppercase words.
type Graph struct {
	nodes []node
	words int
}

// Build constructs a Graph from a word list. Entries are uppercased;
// empty entries are skipped; duplicates collapse into one word.
func Build(words []string) (*Graph, error) {
	g := &Graph{nodes: make([]node, 1, 1+len(words)*4)}
	for _, w := range words {
		w = strings.ToUpper(w)
		if w == "" {
			continue
		}
		if err := g.insert(w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// insert adds one uppercase word, extending the arena as needed.
func (g *Graph) insert(w string) error {
	cur := int32(0)
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: word %q has character %q", ErrInvalidWordList, w, c)
		}
		k := c - 'A'
		next := g.nodes[cur].children[k]
		if next == 0 {
			g.nodes = append(g.nodes, node{})
			next = int32(len(g.nodes) - 1)
			g.nodes[cur].children[k] = next
		}
		cur = next
	}
	if !g.nodes[cur].terminal {
		g.nodes[cur].terminal = true
		g.words++
	}
	return nil
}

// Child steps from node n along letter (must be 'A'..'Z').
// Returns 0 when no word continues this way.
func (g *Graph) Child(n int32, letter byte) int32 {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return g.nodes[n].children[letter-'A']
}

// IsWord reports whether node n completes a word.
func (g *Graph) IsWord(n int32) bool {
	return g.nodes[n].terminal
}

// HasPrefix walks s from the root and returns the node reached.
// The second return is false when no word starts with s.
// The empty string maps to the root.
func (g *Graph) HasPrefix(s string) (int32, bool) {
	cur := int32(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		next := g.Child(cur, c)
		if next == 0 {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Contains reports whether s (any case) is a dictionary word.
func (g *Graph) Contains(s string) bool {
	n, ok := g.HasPrefix(s)
	return ok && g.nodes[n].terminal
}

// Len returns the number of distinct words in the graph.
func (g *Graph) Len() int { return g.words }

// Nodes returns the arena size, root included. Diagnostic only.
func (g *Graph) Nodes() int { return len(g.nodes) }

// LoadReader builds a Graph from one-word-per-line text.
// Blank lines and lines starting with '#' are skipped.
func LoadReader(r io.Reader) (*Graph, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		words = append(words, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWordList, err)
	}
	return Build(words)
}

// LoadFile builds a Graph from a word list file.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWordList, err)
	}
	defer f.Close()
	return LoadReader(f)
}

var (
	initOnce     sync.Once
	defaultGraph *Graph
	initialErr   error
)

// Init loads the process-wide dictionary exactly once.
// Returns an error if the resulting graph is empty.
func Init() error {
	initOnce.Do(func() {
		if path := os.Getenv("WORDS_FILE"); path != "" {
			defaultGraph, initialErr = LoadFile(path)
		} else {
			list, err := assets.WordList()
			if err != nil {
				initialErr = err
				return
			}
			defaultGraph, initialErr = Build(list)
		}
		if initialErr == nil && defaultGraph.Len() == 0 {
			initialErr = fmt.Errorf("%w: no words loaded", ErrInvalidWordList)
		}
	})
	return initialErr
}

// Default returns the graph loaded by Init. Nil before Init succeeds.
func Default() *Graph {
	return defaultGraph
}

// Stats returns counts of loaded data: (words, arena nodes).
func Stats() (wordCount int, nodeCount int) {
	if defaultGraph == nil {
		return 0, 0
	}
	return defaultGraph.Len(), defaultGraph.Nodes()
}
