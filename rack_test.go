// rack_test.go
// Copyright (C) 2024 crossword contributors

package crossword

import "testing"

func TestNewRackRejectsTooManyTiles(t *testing.T) {
	if _, err := NewRack("ABCDEFGH"); err == nil {
		t.Error("NewRack with eight tiles: want error, got nil")
	}
}

func TestNewRackBlankMarkers(t *testing.T) {
	rack, err := NewRack("AB ?")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	if rack.Size() != 4 {
		t.Errorf("Size() = %d, want 4", rack.Size())
	}
	if rack.Counts[Blank] != 2 {
		t.Errorf("Counts[Blank] = %d, want 2 (both ' ' and '?' count as blanks)", rack.Counts[Blank])
	}
}

func TestRackTakeGivePrefersExact(t *testing.T) {
	rack, _ := NewRack("A?")
	a, _ := EncodeLetter('A')
	fromBlank, ok := rack.take(a)
	if !ok || fromBlank {
		t.Errorf("take(A) on a rack holding an exact A: got fromBlank=%v ok=%v, want false true", fromBlank, ok)
	}
	fromBlank, ok = rack.take(a)
	if !ok || !fromBlank {
		t.Errorf("take(A) after the exact A is gone: got fromBlank=%v ok=%v, want true true", fromBlank, ok)
	}
	if _, ok = rack.take(a); ok {
		t.Error("take(A) on an empty rack: want ok=false")
	}
	rack.give(a, true)
	if rack.Counts[Blank] != 1 {
		t.Errorf("give with fromBlank=true should restore the blank, Counts[Blank] = %d, want 1", rack.Counts[Blank])
	}
}

func TestRackCloneIndependent(t *testing.T) {
	rack, _ := NewRack("CAT")
	clone := rack.Clone()
	c, _ := EncodeLetter('C')
	rack.take(c)
	if !clone.Equal(clone) {
		t.Fatal("a rack should always equal itself")
	}
	if clone.Counts[c] != 1 {
		t.Error("Clone should be unaffected by mutations to the original")
	}
}

func TestRackEqual(t *testing.T) {
	a, _ := NewRack("CARTED")
	b, _ := NewRack("TRACED")
	if !a.Equal(b) {
		t.Error("racks holding the same multiset in different order should be Equal")
	}
	c, _ := NewRack("CARTS")
	if a.Equal(c) {
		t.Error("racks holding different multisets should not be Equal")
	}
}
