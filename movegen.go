// movegen.go
// Copyright (C) 2024 crossword contributors

// This file implements the move enumerator and its orchestrator: the
// recursive two-phase ("left-part" then "extend-right") walk of the
// lexicon trie from the Appel-Jacobson algorithm, run once per board
// axis to find every legal placement for a rack. Grounded on
// original_source/src/legal_moves.rs's
// extend_right/left_part/calculate_legal_moves, kept single-threaded
// and synchronous rather than GoSkrafl movegen.go's goroutine-per-axis
// fan-out, with move ranking grounded on GoSkrafl robot.go's
// byScore/sort.Sort pattern.

package crossword

import "sort"

// Move is a single legal placement found by Generate: the row/column of
// its first newly-or-already covered square, the axis it reads along,
// the full word (including any board letters it passes through), and
// its score. Row, Col and Axis are always reported in the board's
// original, un-rotated orientation, regardless of which axis the
// search was run against when it was found.
type Move struct {
	Row, Col int
	Axis     Axis
	Word     string
	Score    int
}

// generator holds the scratch state shared by one row-by-row sweep of
// extend-right/left-part calls along a single board orientation. The
// letter/blank/wasEmpty buffers are grown by append and shrunk back by
// truncation as the recursion backtracks, mirroring the push/pop
// discipline the Rust original applies to its mutable partial_word
// string and rack map.
type generator struct {
	lex   *Lexicon
	board *Board
	rack  *Rack
	cross *crossTable
	moves []Move

	letters   []Letter
	blanks    []bool
	wasEmpty  []bool
	fromRack  int // count of letters placed from the rack on this branch
}

// emit records a legal move found at word-start column wordStartCol of
// row, using the generator's current letters/blanks/wasEmpty buffers
// (length n). Coordinates are unrotated per the board's current
// orientation before being stored.
func (g *generator) emit(row, wordStartCol int) {
	n := len(g.letters)
	if n < 1 {
		return
	}
	letters := make([]Letter, n)
	copy(letters, g.letters)
	blanks := make([]bool, n)
	copy(blanks, g.blanks)
	wasEmpty := make([]bool, n)
	copy(wasEmpty, g.wasEmpty)

	crossValues := make([]int, n)
	for i := 0; i < n; i++ {
		if wasEmpty[i] {
			crossValues[i] = g.cross.crossValue[row][wordStartCol+i]
		}
	}
	score := scoreMove(g.board, row, wordStartCol, Across, letters, blanks, wasEmpty, crossValues, g.fromRack == RackCapacity)

	outRow, outCol, axis := row, wordStartCol, Across
	if !g.board.Across {
		outRow, outCol, axis = wordStartCol, row, Down
	}
	g.moves = append(g.moves, Move{
		Row:   outRow,
		Col:   outCol,
		Axis:  axis,
		Word:  DecodeWord(letters),
		Score: score,
	})
}

// extendRight covers the anchor square and squares to its right with
// rack tiles (subject to the cross-check set and the lexicon trie),
// following existing board letters where present, until the row ends
// or no further letter fits. possible becomes true as soon as a rack
// tile has been placed; a terminal node only yields a legal move once
// possible is true, for both the end-of-row and empty-square branches
// — a word made up entirely of letters already on the board, with
// nothing new placed by this turn, is not a legal move.
func (g *generator) extendRight(node *TrieNode, row, wordStartCol, cursorCol int, possible bool) {
	if cursorCol >= BoardSize {
		if node.Terminal && possible {
			g.emit(row, wordStartCol)
		}
		return
	}
	tile := g.board.Primary[row][cursorCol]
	if tile == Blank {
		if node.Terminal && possible {
			g.emit(row, wordStartCol)
		}
		for letter, child := range node.Children {
			if !g.cross.crossCheck[row][cursorCol].Contains(letter) {
				continue
			}
			fromBlank, ok := g.rack.take(letter)
			if !ok {
				continue
			}
			g.letters = append(g.letters, letter)
			g.blanks = append(g.blanks, fromBlank)
			g.wasEmpty = append(g.wasEmpty, true)
			g.fromRack++
			g.extendRight(child, row, wordStartCol, cursorCol+1, true)
			g.fromRack--
			g.wasEmpty = g.wasEmpty[:len(g.wasEmpty)-1]
			g.blanks = g.blanks[:len(g.blanks)-1]
			g.letters = g.letters[:len(g.letters)-1]
			g.rack.give(letter, fromBlank)
		}
		return
	}
	child, ok := node.Children[tile]
	if !ok {
		return
	}
	g.letters = append(g.letters, tile)
	g.blanks = append(g.blanks, g.board.IsBlank(row, cursorCol))
	g.wasEmpty = append(g.wasEmpty, false)
	// Reaching an already-filled square always happens after the
	// anchor itself (which is always empty) has already taken a rack
	// tile, so possible is already true here.
	g.extendRight(child, row, wordStartCol, cursorCol+1, true)
	g.wasEmpty = g.wasEmpty[:len(g.wasEmpty)-1]
	g.blanks = g.blanks[:len(g.blanks)-1]
	g.letters = g.letters[:len(g.letters)-1]
}

// leftPart explores every rack permutation that could occupy the
// empty, non-anchor squares immediately to the left of the anchor,
// trying extend-right from each resulting trie node (including the
// empty-prefix case, limit == the starting call's value).
func (g *generator) leftPart(node *TrieNode, row, wordStartCol int, limit int) {
	g.extendRight(node, row, wordStartCol, wordStartCol+len(g.letters), false)
	if limit <= 0 {
		return
	}
	for letter, child := range node.Children {
		fromBlank, ok := g.rack.take(letter)
		if !ok {
			continue
		}
		g.letters = append(g.letters, letter)
		g.blanks = append(g.blanks, fromBlank)
		g.wasEmpty = append(g.wasEmpty, true)
		g.fromRack++
		g.leftPart(child, row, wordStartCol-1, limit-1)
		g.fromRack--
		g.wasEmpty = g.wasEmpty[:len(g.wasEmpty)-1]
		g.blanks = g.blanks[:len(g.blanks)-1]
		g.letters = g.letters[:len(g.letters)-1]
		g.rack.give(letter, fromBlank)
	}
}

// generateRow scans a single row of the board's current primary grid,
// calling leftPart or extendRight at each anchor it finds.
func (g *generator) generateRow(row int, rowAnchors uint16) {
	nonAnchorCount := 0
	// existingPrefix accumulates the board letters immediately to the
	// left of the cursor, reset whenever an anchor is crossed.
	var existingPrefix []Letter
	for col := 0; col < BoardSize; col++ {
		isAnchor := rowAnchors&(1<<uint(col)) != 0
		if !isAnchor {
			if tile := g.board.Primary[row][col]; tile != Blank {
				existingPrefix = append(existingPrefix, tile)
			} else {
				existingPrefix = existingPrefix[:0]
			}
			nonAnchorCount++
			continue
		}
		if len(existingPrefix) > 0 {
			node, ok := g.lex.Root.Descend(existingPrefix)
			if ok {
				wordStart := col - len(existingPrefix)
				g.letters = g.letters[:0]
				g.blanks = g.blanks[:0]
				g.wasEmpty = g.wasEmpty[:0]
				for _, l := range existingPrefix {
					g.letters = append(g.letters, l)
					g.blanks = append(g.blanks, g.board.IsBlank(row, wordStart+len(g.letters)-1))
					g.wasEmpty = append(g.wasEmpty, false)
				}
				g.extendRight(node, row, wordStart, col, false)
			}
		} else {
			g.letters = g.letters[:0]
			g.blanks = g.blanks[:0]
			g.wasEmpty = g.wasEmpty[:0]
			g.leftPart(g.lex.Root, row, col, nonAnchorCount)
		}
		existingPrefix = existingPrefix[:0]
		nonAnchorCount = 0
	}
}

// generateAxis computes anchors and cross-checks for the board's
// current orientation and enumerates every legal move that reads along
// it.
func generateAxis(lex *Lexicon, board *Board, rack *Rack) []Move {
	anchors := computeAnchors(board)
	cross := computeCrossTable(lex, board, Across)
	g := &generator{lex: lex, board: board, rack: rack, cross: cross}
	for row := 0; row < BoardSize; row++ {
		if anchors[row] == 0 {
			continue
		}
		g.generateRow(row, anchors[row])
	}
	return g.moves
}

// Generate returns every legal move for the given board and rack,
// ranked by descending score. The board is rotated twice internally
// (once to search the transverse axis, once to restore orientation)
// and is left unchanged on return; the rack is restored to its input
// multiset on every exit path.
func Generate(lex *Lexicon, board *Board, rack *Rack) []Move {
	moves := generateAxis(lex, board, rack)
	board.Rotate()
	moves = append(moves, generateAxis(lex, board, rack)...)
	board.Rotate()
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}
