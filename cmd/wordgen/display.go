// display.go
// Copyright (C) 2024 crossword contributors

// Supplemented from original_source/src/board.rs's "impl Display for
// Board": a boxed grid with background colors marking premium
// squares. Kept in the CLI driver rather than the core package, since
// the core only needs to expose a read API sufficient to render a
// board, not a renderer itself.

package main

import (
	"strings"

	"crossword"
)

const (
	topBorder    = "┌───┬───┬───┬───┬───┬───┬───┬───┬───┬───┬───┬───┬───┬───┬───┐"
	middleBorder = "├───┼───┼───┼───┼───┼───┼───┼───┼───┼───┼───┼───┼───┼───┼───┤"
	bottomBorder = "└───┴───┴───┴───┴───┴───┴───┴───┴───┴───┴───┴───┴───┴───┴───┘"
)

var premiumANSI = map[crossword.Premium]string{
	crossword.DoubleLetter: "\x1b[106m",
	crossword.TripleLetter: "\x1b[104m",
	crossword.DoubleWord:   "\x1b[105m",
	crossword.TripleWord:   "\x1b[101m",
}

// renderBoard draws board as a boxed 15x15 grid with premium squares
// highlighted in their ANSI background color and played letters shown
// in their cells.
func renderBoard(board *crossword.Board) string {
	var sb strings.Builder
	sb.WriteString(topBorder)
	sb.WriteByte('\n')
	for r := 0; r < crossword.BoardSize; r++ {
		sb.WriteString("│")
		for c := 0; c < crossword.BoardSize; c++ {
			color, ok := premiumANSI[crossword.PremiumSquares[r][c]]
			if ok {
				sb.WriteString(color)
			}
			letter, _ := board.Get(r, c)
			sb.WriteByte(' ')
			sb.WriteRune(letter.Rune())
			sb.WriteByte(' ')
			if ok {
				sb.WriteString("\x1b[0m")
			}
			sb.WriteString("│")
		}
		sb.WriteByte('\n')
		if r < crossword.BoardSize-1 {
			sb.WriteString(middleBorder)
		} else {
			sb.WriteString(bottomBorder)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
