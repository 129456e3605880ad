package board

import (
	"errors"
	"testing"
)

func TestFaceLetters(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{'A', "A"},
		{'Q', "Q"},
		{'Z', "Z"},
		{'1', "QU"},
		{'2', "IN"},
		{'3', "TH"},
		{'4', "ER"},
		{'5', "HE"},
		{'6', "AN"},
		{'0', ""},
		{'7', ""},
		{'@', ""},
	}
	for _, tt := range tests {
		if got := tt.face.Letters(); got != tt.want {
			t.Errorf("Face(%q).Letters() = %q, want %q", byte(tt.face), got, tt.want)
		}
	}
}

func TestFaceDisplay(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{'A', "A "},
		{'1', "Qu"},
		{'3', "Th"},
		{'6', "An"},
		{'0', "??"},
	}
	for _, tt := range tests {
		if got := tt.face.Display(); got != tt.want {
			t.Errorf("Face(%q).Display() = %q, want %q", byte(tt.face), got, tt.want)
		}
	}
}

func TestFaceClassification(t *testing.T) {
	tests := []struct {
		face      Face
		letter    bool
		multigram bool
		valid     bool
		blank     bool
	}{
		{'A', true, false, true, false},
		{'Z', true, false, true, false},
		{'1', false, true, true, false},
		{'6', false, true, true, false},
		{'0', false, false, false, true},
		{'7', false, false, false, false},
		{'a', false, false, false, false},
		{' ', false, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.face.Letter(); got != tt.letter {
			t.Errorf("Face(%q).Letter() = %v, want %v", byte(tt.face), got, tt.letter)
		}
		if got := tt.face.Multigram(); got != tt.multigram {
			t.Errorf("Face(%q).Multigram() = %v, want %v", byte(tt.face), got, tt.multigram)
		}
		if got := tt.face.Valid(); got != tt.valid {
			t.Errorf("Face(%q).Valid() = %v, want %v", byte(tt.face), got, tt.valid)
		}
		if got := tt.face.Blank(); got != tt.blank {
			t.Errorf("Face(%q).Blank() = %v, want %v", byte(tt.face), got, tt.blank)
		}
	}
}

func TestParseDie(t *testing.T) {
	d, err := ParseDie("himnu1")
	if err != nil {
		t.Fatalf("ParseDie(himnu1) failed: %v", err)
	}
	if got := d.String(); got != "HIMNU1" {
		t.Errorf("Die.String() = %q, want HIMNU1", got)
	}

	if _, err := ParseDie("EIO000"); err != nil {
		t.Errorf("ParseDie(EIO000) failed: %v; blanks belong on dice", err)
	}

	bad := []string{"", "ABC", "ABCDEFG", "ABCDE7", "ABCDE@", "ABCDE "}
	for _, s := range bad {
		if _, err := ParseDie(s); !errors.Is(err, ErrInvalidDiceString) {
			t.Errorf("ParseDie(%q) error = %v, want ErrInvalidDiceString", s, err)
		}
	}
}
