// movegen_test.go
// Copyright (C) 2024 crossword contributors

package crossword

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateOpeningMove(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	rack, err := NewRack("CAT")
	if err != nil {
		t.Fatalf("NewRack: %v", err)
	}
	moves := Generate(lex, board, rack)
	if len(moves) == 0 {
		t.Fatal("Generate on an empty board with rack CAT: want at least one move")
	}
	var found bool
	for _, m := range moves {
		if m.Word == "CAT" {
			found = true
			if m.Score != 10 {
				t.Errorf("opening CAT through the center: score = %d, want 10", m.Score)
			}
		}
		if !covers(m, CenterRow, CenterCol) {
			t.Errorf("move %+v does not cover the center square on an empty board", m)
		}
	}
	if !found {
		t.Error("expected CAT among the opening moves for rack CAT")
	}
}

func covers(m Move, row, col int) bool {
	if m.Axis == Across {
		return m.Row == row && col >= m.Col && col < m.Col+len(m.Word)
	}
	return m.Col == col && row >= m.Row && row < m.Row+len(m.Word)
}

func TestGenerateRanksByScoreDescending(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	rack, _ := NewRack("CARED")
	moves := Generate(lex, board, rack)
	if !sort.SliceIsSorted(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score }) {
		t.Error("Generate did not return moves ranked by descending score")
	}
}

func TestGenerateRestoresRack(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	rack, _ := NewRack("CARED")
	before := rack.Clone()
	Generate(lex, board, rack)
	if !rack.Equal(before) {
		t.Error("Generate must restore the rack to its input multiset")
	}
}

func TestGenerateLeavesBoardUnchanged(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	board.PlayWord("CAT", 7, 6, Across)
	before := board.Primary
	rack, _ := NewRack("DOGS")
	Generate(lex, board, rack)
	if board.Primary != before {
		t.Error("Generate must leave the board contents unchanged")
	}
	if !board.Across {
		t.Error("Generate must leave the board orientation (Across) unchanged")
	}
}

func TestGenerateFindsCrossWordOnSecondMove(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	if err := board.PlayWord("CAT", 7, 6, Across); err != nil {
		t.Fatalf("PlayWord: %v", err)
	}
	rack, _ := NewRack("DOGS")
	moves := Generate(lex, board, rack)
	var sawDownWord bool
	for _, m := range moves {
		if m.Axis == Down {
			sawDownWord = true
		}
	}
	if !sawDownWord {
		t.Error("expected at least one Down move anchored off the existing CAT")
	}
}

func TestGenerateNoDuplicateRackConsumption(t *testing.T) {
	// A rack with only one 'A' must never be double-counted across
	// left-part and extend-right in the same branch.
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	rack, _ := NewRack("A")
	moves := Generate(lex, board, rack)
	for _, m := range moves {
		if m.Word != "A" {
			t.Errorf("rack holding a single 'A' produced move %q, impossible with one tile", m.Word)
		}
	}
}

func TestGenerateCmpStable(t *testing.T) {
	lex := mustLoadTestLexicon(t)
	board := NewBoard()
	rack, _ := NewRack("CAT")
	a := Generate(lex, board, rack)
	b := Generate(lex, board, rack)
	less := func(x, y Move) bool {
		if x.Score != y.Score {
			return x.Score > y.Score
		}
		if x.Row != y.Row {
			return x.Row < y.Row
		}
		if x.Col != y.Col {
			return x.Col < y.Col
		}
		return x.Word < y.Word
	}
	sort.Slice(a, func(i, j int) bool { return less(a[i], a[j]) })
	sort.Slice(b, func(i, j int) bool { return less(b[i], b[j]) })
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Generate is not deterministic across repeated calls (-first +second):\n%s", diff)
	}
}
