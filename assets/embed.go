package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt defs.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded default dictionary, one word per line.
// It is a small curated list; point WORDS_FILE at a full tournament
// list for real play.
func WordList() ([]string, error) {
	lines, err := readLines("words.txt")
	if err != nil {
		return nil, err
	}
	for i, s := range lines {
		lines[i] = strings.ToLower(s)
	}
	return lines, nil
}

// Definitions returns the embedded starter glossary, keyed by uppercase
// word. Lines are word<TAB>definition.
func Definitions() (map[string]string, error) {
	lines, err := readLines("defs.txt")
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(lines))
	for _, s := range lines {
		word, def, ok := strings.Cut(s, "\t")
		if !ok {
			continue
		}
		out[strings.ToUpper(strings.TrimSpace(word))] = strings.TrimSpace(def)
	}
	return out, nil
}
