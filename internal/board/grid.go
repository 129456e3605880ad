// internal/board/grid.go
//
// Board geometry. A Grid is a row-major face slice with precomputed
// 8-way adjacency; it is immutable once built and safe to share.

package board

import (
	"fmt"
	"strings"
)

// Grid is a filled board.
type Grid struct {
	Width  int
	Height int
	Faces  []Face // row-major, Width*Height entries
	adj    [][]int
}

// ParseGrid builds a Grid from a face string such as "ADYERESTLPNAGIE1".
// Input is uppercased first. The string must have exactly width*height
// playable faces; blanks are rejected.
func ParseGrid(faces string, width, height int) (Grid, error) {
	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidDiceString, width, height)
	}
	s := strings.ToUpper(faces)
	if len(s) != width*height {
		return Grid{}, fmt.Errorf("%w: %d faces for a %dx%d board", ErrInvalidDiceString, len(s), width, height)
	}
	fs := make([]Face, len(s))
	for i := 0; i < len(s); i++ {
		f := Face(s[i])
		if !f.Valid() {
			return Grid{}, fmt.Errorf("%w: face %q at cell %d", ErrInvalidDiceString, s[i], i)
		}
		fs[i] = f
	}
	return newGrid(fs, width, height), nil
}

// newGrid wires faces and adjacency. Faces must already be validated.
func newGrid(faces []Face, width, height int) Grid {
	adj := make([][]int, len(faces))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= height || nx < 0 || nx >= width {
						continue
					}
					adj[i] = append(adj[i], ny*width+nx)
				}
			}
		}
	}
	return Grid{Width: width, Height: height, Faces: faces, adj: adj}
}

// Cells returns the number of board cells.
func (g Grid) Cells() int { return len(g.Faces) }

// String returns the compact face string; ParseGrid round-trips it.
func (g Grid) String() string {
	b := make([]byte, len(g.Faces))
	for i, f := range g.Faces {
		b[i] = byte(f)
	}
	return string(b)
}

// Rows returns one display line per board row, two characters per
// cell, such as "A  D  Y  E".
func (g Grid) Rows() []string {
	rows := make([]string, 0, g.Height)
	for y := 0; y < g.Height; y++ {
		cells := make([]string, g.Width)
		for x := 0; x < g.Width; x++ {
			cells[x] = g.Faces[y*g.Width+x].Display()
		}
		rows = append(rows, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return rows
}
