// main.go
// Copyright (C) 2024 crossword contributors

// Example program for exercising the crossword module: an interactive
// REPL offering "place", "moves" and "quit" commands, grounded on
// original_source/src/main.rs's hardcoded play-then-solutions driver
// and GoSkrafl main/main.go's flag-based CLI style.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"crossword"
)

func main() {
	cfg := crossword.LoadConfig()
	dictPath := flag.String("dict", cfg.DictPath, "path to the lexicon word list")
	boardType := flag.String("board", cfg.BoardType, "premium-square layout ('standard' or 'explo')")
	flag.Parse()

	if err := crossword.SetBoardType(*boardType); err != nil {
		fmt.Fprintf(os.Stderr, "wordgen: %v\n", err)
		os.Exit(1)
	}

	lex, err := crossword.LoadLexiconFile(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordgen: %v\n", err)
		os.Exit(1)
	}

	board := crossword.NewBoard()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(renderBoard(board))
	fmt.Println("commands: place <word> <row> <col> <horizontal|vertical>, moves <rack>, quit")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "place":
			if err := runPlace(board, fields[1:]); err != nil {
				fmt.Fprintf(os.Stderr, "wordgen: %v\n", err)
				continue
			}
			fmt.Println(renderBoard(board))
		case "moves":
			if len(fields) != 2 {
				fmt.Fprintln(os.Stderr, "wordgen: usage: moves <rack>")
				continue
			}
			runMoves(lex, board, fields[1])
		default:
			fmt.Fprintf(os.Stderr, "wordgen: unrecognized command %q\n", fields[0])
		}
	}
}

// runPlace parses "place <word> <row> <col> <horizontal|vertical>",
// converting the 1-indexed row/col the user types into the 0-indexed
// coordinates the core expects.
func runPlace(board *crossword.Board, args []string) error {
	if len(args) != 4 {
		return &crossword.Error{Kind: crossword.InputParse, Msg: "usage: place <word> <row> <col> <horizontal|vertical>"}
	}
	word, rowStr, colStr, axisStr := args[0], args[1], args[2], args[3]
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return &crossword.Error{Kind: crossword.InputParse, Msg: "row must be an integer"}
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return &crossword.Error{Kind: crossword.InputParse, Msg: "column must be an integer"}
	}
	var axis crossword.Axis
	switch strings.ToLower(axisStr) {
	case "horizontal":
		axis = crossword.Across
	case "vertical":
		axis = crossword.Down
	default:
		return &crossword.Error{Kind: crossword.InputParse, Msg: "axis must be 'horizontal' or 'vertical'"}
	}
	return board.PlayWord(strings.ToUpper(word), row-1, col-1, axis)
}

// runMoves generates and prints every legal move for rack against the
// current board, highest score first.
func runMoves(lex *crossword.Lexicon, board *crossword.Board, rackStr string) {
	rack, err := crossword.NewRack(strings.ToUpper(rackStr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wordgen: %v\n", err)
		return
	}
	moves := crossword.Generate(lex, board, rack)
	if len(moves) == 0 {
		fmt.Println("no legal moves")
		return
	}
	for _, m := range moves {
		fmt.Printf("%3d  %-15s (%2d,%2d) %s\n", m.Score, m.Word, m.Row+1, m.Col+1, m.Axis)
	}
}
