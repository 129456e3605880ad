package board

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestParseGridRoundTrip(t *testing.T) {
	for _, in := range []string{"ADYERESTLPNAGIE1", "adyerestlpnagie1"} {
		g, err := ParseGrid(in, 4, 4)
		if err != nil {
			t.Fatalf("ParseGrid(%q) failed: %v", in, err)
		}
		if got := g.String(); got != "ADYERESTLPNAGIE1" {
			t.Errorf("String() = %q, want ADYERESTLPNAGIE1", got)
		}
		if g.Cells() != 16 || g.Width != 4 || g.Height != 4 {
			t.Errorf("grid shape = %dx%d/%d cells, want 4x4/16", g.Width, g.Height, g.Cells())
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		faces string
		w, h  int
	}{
		{"too short", "ABC", 2, 2},
		{"too long", "ABCDE", 2, 2},
		{"bad digit", "ABC7", 2, 2},
		{"bad symbol", "AB@D", 2, 2},
		{"blank face", "AB0D", 2, 2},
		{"lowercase blank stays blank", "ab0d", 2, 2},
		{"negative width", "", -1, 1},
		{"negative height", "", 1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGrid(tt.faces, tt.w, tt.h); !errors.Is(err, ErrInvalidDiceString) {
				t.Errorf("ParseGrid(%q, %d, %d) error = %v, want ErrInvalidDiceString",
					tt.faces, tt.w, tt.h, err)
			}
		})
	}
}

func TestParseGridEmpty(t *testing.T) {
	g, err := ParseGrid("", 0, 0)
	if err != nil {
		t.Fatalf("ParseGrid empty failed: %v", err)
	}
	if g.Cells() != 0 {
		t.Errorf("Cells() = %d, want 0", g.Cells())
	}
}

func TestGridNeighbors(t *testing.T) {
	// 3x3 layout:
	//   0 1 2
	//   3 4 5
	//   6 7 8
	g, err := ParseGrid("ABCDEFGHI", 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		cell int
		want []int
	}{
		{0, []int{1, 3, 4}},
		{1, []int{0, 2, 3, 4, 5}},
		{4, []int{0, 1, 2, 3, 5, 6, 7, 8}},
		{8, []int{4, 5, 7}},
	}
	for _, tt := range tests {
		got := append([]int(nil), g.adj[tt.cell]...)
		sort.Ints(got)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("neighbors of cell %d = %v, want %v", tt.cell, got, tt.want)
		}
	}

	one, _ := ParseGrid("A", 1, 1)
	if len(one.adj[0]) != 0 {
		t.Errorf("1x1 board has neighbors %v, want none", one.adj[0])
	}

	two, _ := ParseGrid("QITE", 2, 2)
	for c := range two.Faces {
		if len(two.adj[c]) != 3 {
			t.Errorf("2x2 cell %d has %d neighbors, want 3", c, len(two.adj[c]))
		}
	}
}

func TestGridRows(t *testing.T) {
	g, err := ParseGrid("1ITE", 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Qu I", "T  E"}
	if got := g.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("Rows() = %q, want %q", got, want)
	}

	fix, _ := ParseGrid("ADYERESTLPNAGIE1", 4, 4)
	rows := fix.Rows()
	if len(rows) != 4 {
		t.Fatalf("Rows() has %d rows, want 4", len(rows))
	}
	if rows[0] != "A  D  Y  E" {
		t.Errorf("Rows()[0] = %q, want %q", rows[0], "A  D  Y  E")
	}
	if rows[3] != "G  I  E  Qu" {
		t.Errorf("Rows()[3] = %q, want %q", rows[3], "G  I  E  Qu")
	}
}
