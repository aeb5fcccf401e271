// crosscheck.go
// Copyright (C) 2024 crossword contributors

// This file computes, for every empty square, which letters could be
// played there without breaking the word already running across it
// (its cross-check set) and what that crossing word is already worth.
// Grounded on original_source/src/legal_moves.rs's
// calculate_cross_check_sets_and_value_set /
// calculate_letter_set_and_score. The trie-descent result for a given
// (prefix, suffix) pair is cached across anchors within a single
// Generate call, the way GoSkrafl dawg.go's crossCache memoizes
// DAWG.CrossSet lookups with a hashicorp/golang-lru LRU.
package crossword

import (
	"github.com/hashicorp/golang-lru/simplelru"
)

// crossTable holds, for every board square, the set of letters
// admissible there (crossCheck) and the point value of the transverse
// run that a placed letter would join (crossValue). Both are only
// meaningful for empty squares; non-empty squares are left zero-valued
// and unused by the enumerator.
type crossTable struct {
	crossCheck [BoardSize][BoardSize]LetterSet
	crossValue [BoardSize][BoardSize]int
}

// crossCheckCache wraps a small LRU so that identical transverse runs,
// which recur often across a board's anchors, have their admissible-
// letter set computed only once.
type crossCheckCache struct {
	lru *simplelru.LRU
}

func newCrossCheckCache(size int) *crossCheckCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &crossCheckCache{lru: lru}
}

func (c *crossCheckCache) lookup(key string, compute func() LetterSet) LetterSet {
	if v, ok := c.lru.Get(key); ok {
		return v.(LetterSet)
	}
	set := compute()
	c.lru.Add(key, set)
	return set
}

// computeCrossTable builds the cross-check set and cross-value matrix
// for every square that is empty and transversely adjacent to at least
// one filled square, for words read along `along`. Squares with no
// transverse neighbor get "accept all letters" and a zero cross-value.
//
// Only the admissible-letter set is cached across anchors by letter
// identity, mirroring GoSkrafl dawg.go's crossCache, which memoizes the
// same kind of trie-derived bitmap and nothing else. The cross value
// depends on which of the run's letters came from a blank (a blank
// scores zero), so two transverse runs that share the same letters but
// differ in blank placement are not interchangeable and crossValue is
// always computed fresh rather than keyed into the cache.
func computeCrossTable(lex *Lexicon, board *Board, along Axis) *crossTable {
	table := &crossTable{}
	cache := newCrossCheckCache(2048)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if board.Primary[r][c] != Blank {
				continue
			}
			prefix, suffix, prefixBlanks, suffixBlanks := board.transverseRun(r, c, along)
			if len(prefix) == 0 && len(suffix) == 0 {
				table.crossCheck[r][c] = AllLetters
				continue
			}
			key := string(DecodeWord(prefix)) + "|" + string(DecodeWord(suffix))
			set := cache.lookup(key, func() LetterSet {
				return crossCheckSet(lex, prefix, suffix)
			})
			table.crossCheck[r][c] = set
			table.crossValue[r][c] = crossValueOf(prefix, suffix, prefixBlanks, suffixBlanks)
		}
	}
	return table
}

// crossCheckSet finds, by descending the trie along prefix and then
// along suffix from each child edge, which letters complete the
// transverse run into an admissible word.
func crossCheckSet(lex *Lexicon, prefix, suffix []Letter) LetterSet {
	var set LetterSet
	node, ok := lex.Root.Descend(prefix)
	if !ok {
		return set
	}
	for letter, child := range node.Children {
		final, ok := child.Descend(suffix)
		if ok && final.Terminal {
			set |= letter.Bit()
		}
	}
	return set
}

// crossValueOf sums the point values of the letters already sitting in
// a transverse run (the placed letter itself is scored separately by
// the caller), honoring each letter's own blank flag so a blank-sourced
// letter never contributes points even when it recurs in several runs.
func crossValueOf(prefix, suffix []Letter, prefixBlanks, suffixBlanks []bool) int {
	value := 0
	for i, l := range prefix {
		value += letterValue(l, prefixBlanks[i])
	}
	for i, l := range suffix {
		value += letterValue(l, suffixBlanks[i])
	}
	return value
}
