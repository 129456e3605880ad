package board

import (
	"reflect"
	"testing"
)

func TestWordSetAdd(t *testing.T) {
	ws := NewWordSet()
	if !ws.Add("tie", 1) {
		t.Error("first Add returned false")
	}
	if ws.Add("tie", 1) {
		t.Error("duplicate Add returned true")
	}
	ws.Add("quit", 1)
	ws.Add("quiet", 2)
	ws.Add("quite", 2)

	if got := ws.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
	if got := ws.Score(); got != 6 {
		t.Errorf("Score() = %d, want 6", got)
	}
	if got := ws.Longest(); got != 5 {
		t.Errorf("Longest() = %d, want 5", got)
	}
	if !ws.Contains("quit") || ws.Contains("quip") {
		t.Error("Contains misreported membership")
	}

	want := []string{"quiet", "quit", "quite", "tie"}
	if got := ws.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestWordSetLengthCounts(t *testing.T) {
	ws := NewWordSet()
	if got := ws.LengthCounts(); len(got) != 0 {
		t.Errorf("empty set LengthCounts() = %v, want none", got)
	}

	ws.Add("tie", 1)
	ws.Add("ante", 1)
	ws.Add("quit", 1)
	ws.Add("quite", 2)
	ws.Add("quiet", 2)
	ws.Add("quiet", 2) // duplicate, must not count twice

	want := []LengthCount{{3, 1}, {4, 2}, {5, 2}}
	if got := ws.LengthCounts(); !reflect.DeepEqual(got, want) {
		t.Errorf("LengthCounts() = %v, want %v", got, want)
	}
}
