// scoring.go
// Copyright (C) 2024 crossword contributors

// This file implements the scoring tables and the score calculator.
// The letter values are taken verbatim from
// original_source/src/score.rs's LETTERS_VALUES (French ODS8 point
// values). The premium-square layout is carried over from GoSkrafl
// board.go's WORD_MULTIPLIERS_STANDARD / LETTER_MULTIPLIERS_STANDARD.

package crossword

// LetterValues holds the point value of each Letter code, index 0
// (Blank) always 0.
var LetterValues = [27]int{
	0, 1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 10, 1, 2, 1, 1, 3, 8, 1, 1, 1, 1, 4, 10, 10, 10, 10,
}

// Premium identifies the kind of bonus a board square grants the first
// time it is covered by a newly placed letter.
type Premium int

const (
	NoPremium Premium = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

// wordMultipliersStandard / letterMultipliersStandard encode the
// standard 15x15 Scrabble premium layout, one digit character per
// square: for the word table, '3'=triple word, '2'=double word,
// '1'=none; for the letter table, '3'=triple letter, '2'=double
// letter, '1'=none. wordMultipliersExplo/letterMultipliersExplo encode
// the alternate "Explo" layout, grounded verbatim on GoSkrafl board.go's
// WORD_MULTIPLIERS_EXPLO/LETTER_MULTIPLIERS_EXPLO.
var wordMultipliersStandard = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliersStandard = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

var wordMultipliersExplo = [BoardSize]string{
	"311111131111113",
	"111111112111111",
	"111111111211111",
	"111211111111111",
	"111121111111111",
	"111112111111211",
	"111111211111121",
	"311111121111113",
	"121111112111111",
	"112111111211111",
	"111111111121111",
	"111111111112111",
	"111112111111111",
	"111111211111111",
	"311111131111113",
}

var letterMultipliersExplo = [BoardSize]string{
	"111121111112111",
	"131112111111131",
	"112111311111211",
	"111111121131112",
	"211111111113111",
	"121111111211111",
	"113111112111111",
	"111211111112111",
	"111111211111311",
	"111112111111121",
	"111311111111112",
	"211131121111111",
	"112111113111211",
	"131111111211131",
	"111211111121111",
}

// PremiumSquares is the 15x15 premium-square table currently in
// effect. Both layouts are symmetric about both diagonals; the standard
// layout is also symmetric about both centerlines, the Explo layout is
// not. Defaults to the standard layout; SetBoardType switches it.
var PremiumSquares [BoardSize][BoardSize]Premium

func init() {
	PremiumSquares = buildPremiumSquares(wordMultipliersStandard, letterMultipliersStandard)
}

func buildPremiumSquares(wordRows, letterRows [BoardSize]string) [BoardSize][BoardSize]Premium {
	var squares [BoardSize][BoardSize]Premium
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			switch wordRows[r][c] {
			case '3':
				squares[r][c] = TripleWord
			case '2':
				squares[r][c] = DoubleWord
			}
			if squares[r][c] == NoPremium {
				switch letterRows[r][c] {
				case '3':
					squares[r][c] = TripleLetter
				case '2':
					squares[r][c] = DoubleLetter
				}
			}
		}
	}
	return squares
}

// SetBoardType switches PremiumSquares to the named layout ("standard"
// or "explo", per GoSkrafl board.go's Board.Init board-type switch).
// Any other name is an error; the previous layout is left in place.
func SetBoardType(boardType string) error {
	switch boardType {
	case "standard":
		PremiumSquares = buildPremiumSquares(wordMultipliersStandard, letterMultipliersStandard)
	case "explo":
		PremiumSquares = buildPremiumSquares(wordMultipliersExplo, letterMultipliersExplo)
	default:
		return &Error{Kind: InputParse, Msg: "unknown board type '" + boardType + "'"}
	}
	return nil
}

// BingoBonus is the extra score awarded for a move that places all
// seven rack tiles in one turn.
const BingoBonus = 50

// letterValue returns the point value of a newly placed letter,
// honoring the blank-scores-zero rule.
func letterValue(l Letter, fromBlank bool) int {
	if fromBlank {
		return 0
	}
	return LetterValues[l]
}

// scoreMove computes the total score for a proposed placement: walk the
// placement letter by letter, applying premiums only to squares that
// were empty before this turn, accumulating the main word score and
// any cross-word contributions, and finally adding the bingo bonus if
// all seven rack tiles were used.
func scoreMove(board *Board, row, col int, axis Axis, letters []Letter, blanks []bool, wasEmpty []bool, crossValues []int, usedAllSeven bool) int {
	mainScore := 0
	crossScore := 0
	wordMultiplier := 1
	rowStep, colStep := 0, 1
	if axis == Down {
		rowStep, colStep = 1, 0
	}
	r, c := row, col
	for i, l := range letters {
		v := letterValue(l, blanks[i])
		if wasEmpty[i] {
			switch PremiumSquares[r][c] {
			case DoubleLetter:
				v *= 2
			case TripleLetter:
				v *= 3
			case DoubleWord:
				wordMultiplier *= 2
			case TripleWord:
				wordMultiplier *= 3
			}
			if crossValues[i] != 0 {
				mult := 1
				switch PremiumSquares[r][c] {
				case DoubleWord:
					mult = 2
				case TripleWord:
					mult = 3
				}
				crossScore += (crossValues[i] + v) * mult
			}
		}
		mainScore += v
		r, c = r+rowStep, c+colStep
	}
	total := mainScore*wordMultiplier + crossScore
	if usedAllSeven {
		total += BingoBonus
	}
	return total
}
