// anchor_test.go
// Copyright (C) 2024 crossword contributors

package crossword

import "testing"

func TestComputeAnchorsEmptyBoard(t *testing.T) {
	b := NewBoard()
	anchors := computeAnchors(b)
	for r := 0; r < BoardSize; r++ {
		if r == CenterRow {
			if anchors[r] != 1<<uint(CenterCol) {
				t.Errorf("anchors[%d] = %b, want only the center column set", r, anchors[r])
			}
			continue
		}
		if anchors[r] != 0 {
			t.Errorf("anchors[%d] = %b, want 0 on an empty board", r, anchors[r])
		}
	}
}

func TestComputeAnchorsAdjacentToTiles(t *testing.T) {
	b := NewBoard()
	if err := b.PlayWord("CAT", 7, 6, Across); err != nil {
		t.Fatalf("PlayWord: %v", err)
	}
	anchors := computeAnchors(b)
	// Row 7 should have anchors at columns 5 (left of C) and 9 (right of T).
	if anchors[7]&(1<<5) == 0 {
		t.Error("expected an anchor left of the played word")
	}
	if anchors[7]&(1<<9) == 0 {
		t.Error("expected an anchor right of the played word")
	}
	// Row 6 and row 8, directly above/below the three covered columns,
	// should each have three anchors (columns 6,7,8).
	for _, r := range []int{6, 8} {
		for _, c := range []int{6, 7, 8} {
			if anchors[r]&(1<<uint(c)) == 0 {
				t.Errorf("expected anchor at (%d,%d), transversely adjacent to the played word", r, c)
			}
		}
	}
	// The center row should no longer carry the synthetic empty-board anchor.
	if anchors[CenterRow] == 1<<uint(CenterCol) {
		t.Error("synthetic center anchor should be gone once the board is non-empty")
	}
}

func TestComputeCrossTableNoNeighborAcceptsAll(t *testing.T) {
	b := NewBoard()
	lex := mustLoadTestLexicon(t)
	table := computeCrossTable(lex, b, Across)
	if table.crossCheck[0][0] != AllLetters {
		t.Error("a square with no transverse neighbor should accept every letter")
	}
}

func TestComputeCrossTableConstrains(t *testing.T) {
	b := NewBoard()
	// 'A' at (6,7) above and 'T' at (8,7) below an empty (7,7), so that
	// the gap square is cross-checked against "A_T" completions.
	if err := b.PlayWord("A", 6, 7, Across); err != nil {
		t.Fatalf("PlayWord: %v", err)
	}
	if err := b.PlayWord("T", 8, 7, Across); err != nil {
		t.Fatalf("PlayWord: %v", err)
	}
	lex := mustLoadTestLexicon(t)
	table := computeCrossTable(lex, b, Across)
	at, _ := EncodeLetter('A')
	// (7,7) is empty with 'A' above and 'T' below: only a letter L such
	// that "A"+L+"T" is a real word may go there. "AT" is two letters,
	// not three; with our tiny dictionary nothing of shape A_T exists,
	// so no letter should be accepted here.
	if table.crossCheck[7][7].Contains(at) {
		t.Error("cross-check set should not admit a letter with no completing word")
	}
}
