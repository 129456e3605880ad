package board

import "testing"

func TestCatalog(t *testing.T) {
	wantNames := []string{
		"4-classic", "4", "5-orig", "5-challenge", "5-big-deluxe", "5", "6-super", "6",
	}
	sets := DiceSets()
	if len(sets) != len(wantNames) {
		t.Fatalf("DiceSets() has %d sets, want %d", len(sets), len(wantNames))
	}
	for i, ds := range sets {
		if ds.Name != wantNames[i] {
			t.Errorf("set %d name = %q, want %q", i, ds.Name, wantNames[i])
		}
		if got, want := len(ds.Dice), ds.Size*ds.Size; got != want {
			t.Errorf("set %q has %d dice, want %d for %dx%d", ds.Name, got, want, ds.Size, ds.Size)
		}
		if ds.Desc == "" {
			t.Errorf("set %q has no description", ds.Name)
		}
	}
}

func TestCatalogKnownDice(t *testing.T) {
	tests := []struct {
		set string
		die string
	}{
		{"4", "HIMNU1"},       // the Qu die
		{"5", "123456"},       // all multigram faces
		{"6-super", "EIO000"}, // blank faces
	}
	for _, tt := range tests {
		ds, ok := GetDiceSet(tt.set)
		if !ok {
			t.Fatalf("GetDiceSet(%q) not found", tt.set)
		}
		found := false
		for _, d := range ds.Dice {
			if d.String() == tt.die {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("set %q missing die %q", tt.set, tt.die)
		}
	}
}

func TestDiePlayable(t *testing.T) {
	d, err := ParseDie("EIO000")
	if err != nil {
		t.Fatalf("ParseDie(EIO000) failed: %v", err)
	}
	if !d.Playable() {
		t.Error("EIO000 not playable, want playable")
	}
	d, err = ParseDie("000000")
	if err != nil {
		t.Fatalf("ParseDie(000000) failed: %v", err)
	}
	if d.Playable() {
		t.Error("000000 playable, want unplayable")
	}
}

func TestGetDiceSet(t *testing.T) {
	ds, ok := GetDiceSet("4-classic")
	if !ok || ds.Name != "4-classic" || ds.Size != 4 {
		t.Errorf("GetDiceSet(4-classic) = %+v, %v", ds, ok)
	}
	if _, ok := GetDiceSet("3"); ok {
		t.Error("GetDiceSet(3) found a set, want miss")
	}
}

func TestDiceSetStrings(t *testing.T) {
	ds, _ := GetDiceSet("4")
	strs := ds.Strings()
	if len(strs) != 16 {
		t.Fatalf("Strings() has %d entries, want 16", len(strs))
	}
	if strs[0] != "AAEEGN" {
		t.Errorf("Strings()[0] = %q, want AAEEGN", strs[0])
	}
}
