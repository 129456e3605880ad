// internal/board/dice.go
//
// Dice and the named dice-set catalog.
//
// A die has exactly six faces. The catalog reproduces the published
// Boggle sets: the digit faces encode the two-letter tiles (see
// face.go) and '0' encodes the blank faces of the Super Big set.

package board

import (
	"fmt"
	"strings"
)

// facesPerDie is fixed by the physical game.
const facesPerDie = 6

// Die is one six-faced die.
type Die [facesPerDie]Face

// ParseDie parses a six-symbol face string such as "HIMNU1".
// Blanks are allowed here; they are rejected later, at roll time.
func ParseDie(s string) (Die, error) {
	var d Die
	s = strings.ToUpper(s)
	if len(s) != facesPerDie {
		return d, fmt.Errorf("%w: die %q must have %d faces", ErrInvalidDiceString, s, facesPerDie)
	}
	for i := 0; i < facesPerDie; i++ {
		f := Face(s[i])
		if !f.Valid() && !f.Blank() {
			return d, fmt.Errorf("%w: die %q has unknown face %q", ErrInvalidDiceString, s, s[i])
		}
		d[i] = f
	}
	return d, nil
}

// Playable reports whether at least one face can appear on a board.
// A die of six blanks would otherwise re-roll forever.
func (d Die) Playable() bool {
	for _, f := range d {
		if f.Valid() {
			return true
		}
	}
	return false
}

// String returns the six-symbol face string.
func (d Die) String() string {
	b := make([]byte, facesPerDie)
	for i, f := range d {
		b[i] = byte(f)
	}
	return string(b)
}

// DiceSet is a named collection of dice for a square board.
type DiceSet struct {
	Name string
	Desc string
	Size int // board is Size x Size
	Dice []Die
}

// Strings returns the face strings of every die, for display and JSON.
func (ds *DiceSet) Strings() []string {
	out := make([]string, len(ds.Dice))
	for i, d := range ds.Dice {
		out[i] = d.String()
	}
	return out
}

func mustDice(faces ...string) []Die {
	out := make([]Die, len(faces))
	for i, s := range faces {
		d, err := ParseDie(s)
		if err != nil {
			panic(err)
		}
		out[i] = d
	}
	return out
}

// The published sets, in catalog order.
var diceSets = []*DiceSet{
	{
		Name: "4-classic",
		Desc: "4x4 Classic",
		Size: 4,
		Dice: mustDice(
			"AACIOT", "ABILTY", "ABJMOQ", "ACDEMP",
			"ACELRS", "ADENVZ", "AHMORS", "BIFORX",
			"DENOSW", "DKNOTU", "EEFHIY", "EGKLUY",
			"EGINTV", "EHINPS", "ELPSTU", "GILRUW",
		),
	},
	{
		Name: "4",
		Desc: "4x4 Revised",
		Size: 4,
		Dice: mustDice(
			"AAEEGN", "ABBJOO", "ACHOPS", "AFFKPS",
			"AOOTTW", "CIMOTU", "DEILRX", "DELRVY",
			"DISTTY", "EEGHNW", "EEINSU", "EHRTVW",
			"EIOSST", "ELRTTY", "HIMNU1", "HLNNRZ",
		),
	},
	{
		Name: "5-orig",
		Desc: "5x5 Original",
		Size: 5,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCENST",
			"CEIILT", "CEIPST", "DDHNOT", "DHHLOR", "DHHLOR",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "IPRRRY", "NOOTUW", "OOOTTU",
		),
	},
	{
		Name: "5-challenge",
		Desc: "5x5 Challenge",
		Size: 5,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCENST",
			"CEIILT", "CEIPST", "DDHNOT", "DHHLOR", "IKLM1U",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "IPRRRY", "NOOTUW", "OOOTTU",
		),
	},
	{
		Name: "5-big-deluxe",
		Desc: "5x5 Big Deluxe",
		Size: 5,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BJK1XZ", "CCNSTW",
			"CEIILT", "CEIPST", "DDLNOR", "DHHLOR", "DHHNOT",
			"DHLNOR", "EIIITT", "CEILPT", "EMOTTT", "ENSSSU",
			"FIPRSY", "GORRVW", "HIPRRY", "NOOTUW", "OOOTTU",
		),
	},
	{
		Name: "5",
		Desc: "5x5 Big 2012",
		Size: 5,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAFIRS", "ADENNN", "AEEEEM",
			"AEEGMU", "AEGMNN", "AFIRSY", "BBJKXZ", "CCENST",
			"EIILST", "CEIPST", "DDHNOT", "DHHLOR", "DHHNOW",
			"DHLNOR", "EIIITT", "EILPST", "EMOTTT", "ENSSSU",
			"123456", "GORRVW", "IPRSYY", "NOOTUW", "OOOTTU",
		),
	},
	{
		Name: "6-super",
		Desc: "6x6 Super Big",
		Size: 6,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAEEOO", "AAFIRS", "ABDEIO", "ADENNN",
			"AEEEEM", "AEEGMU", "AEGMNN", "AEILMN", "AEINOU", "AFIRSY",
			"123456", "BBJKXZ", "CCENST", "CDDLNN", "CEIITT", "CEIPST",
			"CFGNUY", "DDHNOT", "DHHLOR", "DHHNOW", "DHLNOR", "EHILRS",
			"EIILST", "EILPST", "EIO000", "EMTTTO", "ENSSSU", "GORRVW",
			"HIRSTV", "HOPRST", "IPRSYY", "JK1WXZ", "NOOTUW", "OOOTTU",
		),
	},
	{
		Name: "6",
		Desc: "6x6 Super Big Simple",
		Size: 6,
		Dice: mustDice(
			"AAAFRS", "AAEEEE", "AAEEOO", "AAFIRS", "ABDEIO", "ADENNN",
			"AEEEEM", "AEEGMU", "AEGMNN", "AEILMN", "AEINOU", "AFIRSY",
			"AEIOUS", "BBJKXZ", "CCENST", "CDDLNN", "CEIITT", "CEIPST",
			"CFGNUY", "DDHNOT", "DHHLOR", "DHHNOW", "DHLNOR", "EHILRS",
			"EIILST", "EILPST", "EIOSSS", "EMTTTO", "ENSSSU", "GORRVW",
			"HIRSTV", "HOPRST", "IPRSYY", "JK1WXZ", "NOOTUW", "OOOTTU",
		),
	},
}

// GetDiceSet finds a catalog set by name.
func GetDiceSet(name string) (*DiceSet, bool) {
	for _, ds := range diceSets {
		if ds.Name == name {
			return ds, true
		}
	}
	return nil, false
}

// DiceSets returns the catalog in declared order.
func DiceSets() []*DiceSet {
	return diceSets
}
