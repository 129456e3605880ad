package board

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/joelburton/tboggle/assets"
	"github.com/joelburton/tboggle/internal/dict"
)

func embeddedDict(t testing.TB) ([]string, *dict.Graph) {
	t.Helper()
	list, err := assets.WordList()
	if err != nil {
		t.Fatal(err)
	}
	d, err := dict.Build(list)
	if err != nil {
		t.Fatal(err)
	}
	return list, d
}

// traceable reports whether word (uppercase) can be spelled on the grid.
// It walks the word letter by letter instead of walking the dictionary,
// so it exercises none of the solver's machinery.
func traceable(g Grid, word string) bool {
	visited := make([]bool, len(g.Faces))
	var walk func(cell int, rest string) bool
	walk = func(cell int, rest string) bool {
		letters := g.Faces[cell].Letters()
		if len(rest) < len(letters) {
			return rest == letters[:len(rest)]
		}
		if rest[:len(letters)] != letters {
			return false
		}
		rest = rest[len(letters):]
		if rest == "" {
			return true
		}
		visited[cell] = true
		ok := false
		for _, n := range g.adj[cell] {
			if !visited[n] && walk(n, rest) {
				ok = true
				break
			}
		}
		visited[cell] = false
		return ok
	}
	for c := range g.Faces {
		if walk(c, word) {
			return true
		}
	}
	return false
}

// Solve must agree exactly with brute-force word tracing.
func TestSolveMatchesBruteForce(t *testing.T) {
	list, d := embeddedDict(t)

	boards := []struct {
		faces string
		w, h  int
	}{
		{"TOTO", 2, 2},
		{"1ITE", 2, 2},
		{"ADERST1NP", 3, 3},
		{"SER1TANES", 3, 3},
		{fixtureBoard, 4, 4},
	}
	for _, tb := range boards {
		g, err := ParseGrid(tb.faces, tb.w, tb.h)
		if err != nil {
			t.Fatal(err)
		}
		ws, err := Solve(g, d, DefaultScores, 3)
		if err != nil {
			t.Fatal(err)
		}

		var want []string
		for _, w := range list {
			if len(w) >= 3 && traceable(g, strings.ToUpper(w)) {
				want = append(want, w)
			}
		}
		sort.Strings(want)
		if want == nil {
			want = []string{}
		}

		if got := ws.Words(); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: Solve and brute force disagree\n got: %v\nwant: %v", tb.faces, got, want)
		}
	}
}

func TestTraceableSelfCheck(t *testing.T) {
	g, err := ParseGrid("1ITE", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	// TIQ ends on the first letter of the Qu face, which counts.
	for _, w := range []string{"QUIT", "QUITE", "QUIET", "TIE", "Q", "QU", "QUI", "TIQ"} {
		if !traceable(g, w) {
			t.Errorf("traceable(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"QUEEN", "EQUIP", "QUII", "TET"} {
		if traceable(g, w) {
			t.Errorf("traceable(%q) = true, want false", w)
		}
	}
}
