// internal/board/face.go
//
// Face symbols. A board cell holds one byte:
//   'A'..'Z'  a single letter
//   '1'..'6'  a two-letter face: Qu In Th Er He An
//   '0'       blank; legal on a die, never on a played board
//
// The digit codes come straight from the published dice sets, where
// some faces carry two letters (the classic Qu die, and the two-letter
// faces of the Super Big set).

package board

// Face is one die-face symbol.
type Face byte

// FaceBlank is the unplayable blank face found on some 6x6 dice.
const FaceBlank Face = '0'

// Closed lookup tables for the digit faces, indexed by digit value.
var (
	multigrams       = [7]string{1: "QU", 2: "IN", 3: "TH", 4: "ER", 5: "HE", 6: "AN"}
	multigramDisplay = [7]string{1: "Qu", 2: "In", 3: "Th", 4: "Er", 5: "He", 6: "An"}
)

// Blank reports whether f is the blank face.
func (f Face) Blank() bool { return f == FaceBlank }

// Letter reports whether f is a plain single-letter face.
func (f Face) Letter() bool { return f >= 'A' && f <= 'Z' }

// Multigram reports whether f is one of the two-letter faces.
func (f Face) Multigram() bool { return f >= '1' && f <= '6' }

// Valid reports whether f may appear on a playable board.
// Blanks are not playable.
func (f Face) Valid() bool { return f.Letter() || f.Multigram() }

// Letters returns the uppercase letters this face contributes to a
// word: one letter for 'A'..'Z', two for the digit faces, empty for
// anything else.
func (f Face) Letters() string {
	switch {
	case f.Letter():
		return string(f)
	case f.Multigram():
		return multigrams[f-'0']
	default:
		return ""
	}
}

// Display returns the two-character cell label used when rendering a
// board: "Qu" for a multigram, the letter plus a space otherwise.
func (f Face) Display() string {
	switch {
	case f.Letter():
		return string(f) + " "
	case f.Multigram():
		return multigramDisplay[f-'0']
	default:
		return "??"
	}
}
