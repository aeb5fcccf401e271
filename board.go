// board.go
// Copyright (C) 2024 crossword contributors

// This file implements the board: two parallel 15x15 grids kept in
// lockstep, an atomic "play word" mutation, and the rotation that swaps
// the grids and flips the play orientation. Grounded on
// original_source/src/board.rs's Board/play/rotate.

package crossword

// BoardSize is the side length of the board.
const BoardSize = 15

// CenterRow and CenterCol name the opening-move anchor square, 0-indexed.
const (
	CenterRow = BoardSize / 2
	CenterCol = BoardSize / 2
)

// Axis names the direction a word reads in: Across runs left-to-right
// along a row, Down runs top-to-bottom along a column.
type Axis bool

const (
	Across Axis = true
	Down   Axis = false
)

func (a Axis) String() string {
	if a == Across {
		return "across"
	}
	return "down"
}

// Board holds two parallel 15x15 grids of letter codes: Primary is the
// grid in the current play orientation, Secondary is always its
// transpose. Both are mutated together by Play; Rotate swaps them and
// flips the orientation flag. A parallel pair of blank-tracking grids
// records which squares were covered by a blank tile, so that a blank
// keeps scoring zero in cross-words formed on later turns, regardless
// of which letter it stands in for.
type Board struct {
	Primary   [BoardSize][BoardSize]Letter
	Secondary [BoardSize][BoardSize]Letter
	// blankPrimary/blankSecondary mirror Primary/Secondary: true means
	// the letter sitting in that square came from a blank tile.
	blankPrimary   [BoardSize][BoardSize]bool
	blankSecondary [BoardSize][BoardSize]bool
	// Across records the board's current orientation: true means
	// Primary reads left-to-right as originally dealt, false means the
	// board has been rotated an odd number of times.
	Across   bool
	NumTiles int
}

// NewBoard returns a fresh, empty board in the default orientation.
func NewBoard() *Board {
	return &Board{Across: true}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Get returns the letter at the given primary-grid coordinate, or
// Blank (0) if the square is empty. Returns an error if out of range.
func (b *Board) Get(row, col int) (Letter, error) {
	if !inBounds(row, col) {
		return 0, &Error{Kind: OutOfRange, Msg: "board: coordinate out of range"}
	}
	return b.Primary[row][col], nil
}

// IsBlank reports whether the letter sitting at (row, col) came from a
// blank tile. Meaningless (returns false) for an empty square.
func (b *Board) IsBlank(row, col int) bool {
	if !inBounds(row, col) {
		return false
	}
	return b.blankPrimary[row][col]
}

// HasCenterTile reports whether the board's opening-move center square
// is covered.
func (b *Board) HasCenterTile() bool {
	return b.Primary[CenterRow][CenterCol] != Blank
}

// Play writes letters (and the parallel blanks flags, same length)
// into both grids starting at (row, col), reading across or down. The
// play is atomic: if any square would go out of range, or would
// overwrite an existing letter with a different one, no square is
// written and an error is returned.
func (b *Board) Play(letters []Letter, blanks []bool, row, col int, axis Axis) error {
	if len(blanks) != len(letters) {
		return &Error{Kind: InvalidCharacter, Msg: "board: letters/blanks length mismatch"}
	}
	rowStep, colStep := 0, 1
	if axis == Down {
		rowStep, colStep = 1, 0
	}
	// Validate before mutating anything, so the play is all-or-nothing.
	r, c := row, col
	for _, l := range letters {
		if !inBounds(r, c) {
			return &Error{Kind: OutOfRange, Msg: "board: placement runs off the board"}
		}
		if existing := b.Primary[r][c]; existing != Blank && existing != l {
			return &Error{Kind: InvalidCharacter, Msg: "board: overlap disagrees with existing letter"}
		}
		r, c = r+rowStep, c+colStep
	}
	r, c = row, col
	for i, l := range letters {
		if b.Primary[r][c] == Blank {
			b.NumTiles++
		}
		b.Primary[r][c] = l
		b.Secondary[c][r] = l
		b.blankPrimary[r][c] = blanks[i]
		b.blankSecondary[c][r] = blanks[i]
		r, c = r+rowStep, c+colStep
	}
	return nil
}

// PlayWord is a convenience wrapper around Play that takes an
// uppercase word string with no blanks.
func (b *Board) PlayWord(word string, row, col int, axis Axis) error {
	letters, err := EncodeWord(word)
	if err != nil {
		return err
	}
	return b.Play(letters, make([]bool, len(letters)), row, col, axis)
}

// Rotate swaps the primary and secondary grids (and their blank
// trackers) and flips the orientation flag. Calling Rotate twice
// restores the original board exactly, letting the same row-wise move
// enumerator cover both across and down plays.
func (b *Board) Rotate() {
	b.Primary, b.Secondary = b.Secondary, b.Primary
	b.blankPrimary, b.blankSecondary = b.blankSecondary, b.blankPrimary
	b.Across = !b.Across
}

// Fragment directions, used when walking a transverse or in-line run
// of already-placed letters away from a square.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// fragment returns the letters (with their blank flags) forming the
// maximal contiguous run of filled squares starting immediately next
// to (row, col) in the given direction, nearest letter first.
func (b *Board) fragment(row, col int, dir direction) (letters []Letter, blanks []bool) {
	dr, dc := 0, 0
	switch dir {
	case dirUp:
		dr = -1
	case dirDown:
		dr = 1
	case dirLeft:
		dc = -1
	case dirRight:
		dc = 1
	}
	r, c := row+dr, col+dc
	for inBounds(r, c) && b.Primary[r][c] != Blank {
		letters = append(letters, b.Primary[r][c])
		blanks = append(blanks, b.blankPrimary[r][c])
		r, c = r+dr, c+dc
	}
	return
}

// transverseRun returns the prefix (above/left) and suffix
// (below/right) word fragments that cross through (row, col) along
// the axis transverse to `along`. The prefix is returned in reading
// order (nearest-to-square letter last).
func (b *Board) transverseRun(row, col int, along Axis) (prefix, suffix []Letter, prefixBlanks, suffixBlanks []bool) {
	var upDir, downDir direction
	if along == Across {
		upDir, downDir = dirUp, dirDown
	} else {
		upDir, downDir = dirLeft, dirRight
	}
	rawPrefix, rawPrefixBlanks := b.fragment(row, col, upDir)
	// rawPrefix is nearest-letter-first; reverse it into reading order.
	prefix = make([]Letter, len(rawPrefix))
	prefixBlanks = make([]bool, len(rawPrefix))
	for i, l := range rawPrefix {
		prefix[len(rawPrefix)-1-i] = l
		prefixBlanks[len(rawPrefix)-1-i] = rawPrefixBlanks[i]
	}
	suffix, suffixBlanks = b.fragment(row, col, downDir)
	return
}
