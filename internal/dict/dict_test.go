package dict

import (
	"errors"
	"strings"
	"testing"
)

func mustBuild(t *testing.T, words ...string) *Graph {
	t.Helper()
	g, err := Build(words)
	if err != nil {
		t.Fatalf("Build(%v) failed: %v", words, err)
	}
	return g
}

func TestBuildAndContains(t *testing.T) {
	g := mustBuild(t, "cat", "cats", "car", "dog", "do")

	if got := g.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"CAT", true},
		{"cats", true},
		{"car", true},
		{"do", true},
		{"dog", true},
		{"ca", false}, // prefix, not a word
		{"c", false},
		{"catsup", false},
		{"bird", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := g.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestHasPrefix(t *testing.T) {
	g := mustBuild(t, "quit", "quite", "quiet")

	tests := []struct {
		prefix string
		want   bool
	}{
		{"", true},
		{"q", true},
		{"qu", true},
		{"qui", true},
		{"quit", true},
		{"quie", true},
		{"quiets", false},
		{"x", false},
		{"uq", false},
	}
	for _, tt := range tests {
		if _, got := g.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestChildWalk(t *testing.T) {
	g := mustBuild(t, "at", "ate")

	n := g.Child(0, 'A')
	if n == 0 {
		t.Fatal("Child(root, 'A') = 0, want a node")
	}
	if g.IsWord(n) {
		t.Error("IsWord after 'A' = true, want false")
	}
	n = g.Child(n, 'T')
	if n == 0 {
		t.Fatal("Child(A, 'T') = 0, want a node")
	}
	if !g.IsWord(n) {
		t.Error("IsWord after 'AT' = false, want true")
	}
	n2 := g.Child(n, 'E')
	if n2 == 0 || !g.IsWord(n2) {
		t.Errorf("walking ATE: node=%d IsWord=%v, want terminal node", n2, n2 != 0 && g.IsWord(n2))
	}
	if got := g.Child(n, 'Z'); got != 0 {
		t.Errorf("Child(AT, 'Z') = %d, want 0", got)
	}
	if got := g.Child(0, '!'); got != 0 {
		t.Errorf("Child(root, '!') = %d, want 0", got)
	}
}

func TestBuildRejectsBadWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"digit", []string{"cat", "d0g"}},
		{"space", []string{"two words"}},
		{"punct", []string{"it's"}},
		{"hyphen", []string{"co-op"}},
		{"accent", []string{"café"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.words); !errors.Is(err, ErrInvalidWordList) {
				t.Errorf("Build(%v) error = %v, want ErrInvalidWordList", tt.words, err)
			}
		})
	}
}

func TestBuildDedupAndEmpty(t *testing.T) {
	g := mustBuild(t, "cat", "CAT", "Cat", "", "cat")
	if got := g.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1 after duplicates", got)
	}

	empty := mustBuild(t)
	if got := empty.Len(); got != 0 {
		t.Errorf("empty graph Len() = %d, want 0", got)
	}
	if empty.Contains("cat") {
		t.Error("empty graph Contains(cat) = true, want false")
	}
	if got := empty.Nodes(); got != 1 {
		t.Errorf("empty graph Nodes() = %d, want 1 (root only)", got)
	}
}

func TestLoadReader(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"cat",
		"  DOG  ",
		"# another",
		"bird",
	}, "\n")

	g, err := LoadReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if got := g.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	for _, w := range []string{"cat", "dog", "bird"} {
		if !g.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
}

func BenchmarkContains(b *testing.B) {
	words := []string{
		"quit", "quite", "quiet", "rest", "rests", "nest", "nests",
		"pine", "pines", "spine", "spines", "pearl", "pearls",
	}
	g, err := Build(words)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Contains("spines")
	}
}
