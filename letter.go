// letter.go
// Copyright (C) 2024 crossword contributors

// This file implements the letter codec (C1): the bijection between a
// blank marker/alphabet rune and the compact integer code used
// everywhere else in the package as a map key and bitset index. The
// codec is built on an Alphabet (rune list plus a lookup table),
// grounded on GoSkrafl dawg.go's Alphabet/BitMap, and the board, trie
// and rack types only ever store Letter/LetterSet values. The
// package-level helpers (EncodeLetter, EncodeWord, Letter.Rune) and
// everything built on them (LoadLexicon, NewRack, Board.PlayWord) use
// EnglishAlphabet, and AllLetters covers its 26 letters; no loader
// takes another Alphabet.

package crossword

import "unicode"

// Letter is a compact integer code for a board or rack letter. 0
// denotes the blank / an empty board square; 1..N denote the N runes
// of whichever Alphabet encoded it.
type Letter uint8

// Blank is the letter code used both for an empty board square and for
// a blank tile sitting in a rack. The two meanings never need to be
// told apart by the code alone: a Board only ever stores Blank in a
// square that has never been played, while a Rack's count of Blank is
// the number of wildcard tiles still available to be assigned a letter.
const Blank Letter = 0

// maxAlphabetSize is the largest alphabet an Alphabet can encode:
// LetterSet is a 32-bit bitset, one bit per non-blank letter.
const maxAlphabetSize = 32

// NumLetters is the size of the default English/French A-Z alphabet.
const NumLetters = 26

// LetterSet is a bitset over Letter codes 1..32, bit (L-1) set means L
// is a member. An Alphabet never exceeds maxAlphabetSize runes, so a
// LetterSet can always represent "every letter of the alphabet".
type LetterSet uint32

// AllLetters is the LetterSet containing every letter of the default
// (English) alphabet (used for squares with no transverse neighbor).
const AllLetters LetterSet = (1 << NumLetters) - 1

// Alphabet maps between display runes and the Letter codes 1..N used
// internally. Runes are matched case-insensitively; encoding always
// normalizes to the Alphabet's own case via its rune list.
type Alphabet struct {
	runes []rune
	index map[rune]Letter
}

// NewAlphabet builds an Alphabet from a string of distinct runes, one
// per letter, in code order (the first rune encodes to Letter(1), and
// so on). It panics if letters holds more than 32 runes, since a
// LetterSet cannot address more bits than that.
func NewAlphabet(letters string) *Alphabet {
	runes := []rune(letters)
	if len(runes) > maxAlphabetSize {
		panic("crossword: alphabet cannot exceed 32 letters")
	}
	a := &Alphabet{runes: runes, index: make(map[rune]Letter, len(runes))}
	for i, r := range runes {
		a.index[unicode.ToUpper(r)] = Letter(i + 1)
	}
	return a
}

// Size returns the number of non-blank letters in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.runes)
}

// Encode converts a rune, or a blank marker (' ' or '?'), to its
// Letter code within this alphabet. Any unrecognized rune is an error.
func (a *Alphabet) Encode(r rune) (Letter, error) {
	if r == ' ' || r == '?' {
		return Blank, nil
	}
	if l, ok := a.index[unicode.ToUpper(r)]; ok {
		return l, nil
	}
	return 0, &Error{Kind: InvalidCharacter, Msg: "invalid character '" + string(r) + "'"}
}

// Rune converts a Letter code back to its display rune: ' ' for Blank,
// otherwise the alphabet's rune for that code.
func (a *Alphabet) Rune(l Letter) rune {
	if l == Blank {
		return ' '
	}
	return a.runes[l-1]
}

// EnglishAlphabet is the default 26-letter Latin alphabet used by the
// package-level EncodeLetter/Rune helpers and by LoadLexicon.
var EnglishAlphabet = NewAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// EncodeLetter converts an uppercase ASCII letter, or a blank marker
// (' ' or '?'), to its Letter code in EnglishAlphabet. Any other rune
// is an error.
func EncodeLetter(r rune) (Letter, error) {
	if unicode.IsLower(r) {
		return 0, &Error{Kind: InvalidCharacter, Msg: "invalid character '" + string(r) + "'"}
	}
	return EnglishAlphabet.Encode(r)
}

// Rune converts a Letter code back to its display rune in
// EnglishAlphabet: ' ' for Blank, otherwise the uppercase ASCII letter
// it represents.
func (l Letter) Rune() rune {
	return EnglishAlphabet.Rune(l)
}

// Bit returns the LetterSet bit corresponding to this letter. Blank has
// no bit of its own; callers that need "any letter allowed" use
// AllLetters directly.
func (l Letter) Bit() LetterSet {
	if l == Blank {
		return 0
	}
	return 1 << uint(l-1)
}

// Contains reports whether the LetterSet admits the given letter.
func (s LetterSet) Contains(l Letter) bool {
	return s&l.Bit() != 0
}

// EncodeWord converts a string of uppercase letters (and blanks) to a
// slice of Letter codes, failing fast on the first invalid character.
func EncodeWord(word string) ([]Letter, error) {
	letters := make([]Letter, 0, len(word))
	for _, r := range word {
		l, err := EncodeLetter(r)
		if err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}
	return letters, nil
}

// DecodeWord converts a slice of Letter codes back to its string form.
func DecodeWord(letters []Letter) string {
	runes := make([]rune, len(letters))
	for i, l := range letters {
		runes[i] = l.Rune()
	}
	return string(runes)
}
