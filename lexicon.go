// lexicon.go
// Copyright (C) 2024 crossword contributors

// This file implements the lexicon trie (C2): a prefix tree over the
// admissible word list, built once at startup and read-only thereafter.
// Grounded on original_source/src/lexicon.rs's Node/Lexicon, reworked
// into idiomatic Go: explicit error returns instead of unwrap()/panic(),
// and a bufio.Scanner-driven loader instead of BufReader::lines().

package crossword

import (
	"bufio"
	"io"
	"os"
)

// TrieNode is a single node of the lexicon trie: a terminal flag (true
// iff the path from the root spells a complete admissible word) and a
// mapping from letter code to child node. Nodes are created by batch
// load and are immutable thereafter; the move enumerator only ever
// borrows references into the tree owned by the Lexicon's root.
type TrieNode struct {
	Terminal bool
	Children map[Letter]*TrieNode
}

func newTrieNode() *TrieNode {
	return &TrieNode{Children: make(map[Letter]*TrieNode)}
}

// Lexicon owns the complete trie built from a word list.
type Lexicon struct {
	Root *TrieNode
}

// NewLexicon returns an empty Lexicon, containing only the root node.
func NewLexicon() *Lexicon {
	return &Lexicon{Root: newTrieNode()}
}

// insert adds a single word to the trie, extending existing prefixes
// and marking the final node terminal.
func (lex *Lexicon) insert(word string) error {
	node := lex.Root
	for _, r := range word {
		letter, err := EncodeLetter(r)
		if err != nil {
			return err
		}
		child, ok := node.Children[letter]
		if !ok {
			child = newTrieNode()
			node.Children[letter] = child
		}
		node = child
	}
	node.Terminal = true
	return nil
}

// LoadLexicon builds a Lexicon from a reader yielding one uppercase
// A-Z word per line. Any invalid character is reported with the
// offending line.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	lex := NewLexicon()
	scanner := bufio.NewScanner(r)
	// Words can be much longer than bufio.Scanner's 64KiB default
	// token limit only in pathological inputs, but we still raise the
	// limit defensively for long compound-word lexicons.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := lex.insert(word); err != nil {
			return nil, &Error{Kind: LexiconLoad, Msg: "lexicon: " + err.Error() + " in word \"" + word + "\""}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Kind: LexiconLoad, Msg: "lexicon: " + err.Error()}
	}
	return lex, nil
}

// LoadLexiconFile opens path and loads it as a Lexicon. A missing or
// unreadable file should be treated as fatal at startup by the caller.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: LexiconLoad, Msg: "lexicon: " + err.Error()}
	}
	defer f.Close()
	return LoadLexicon(f)
}

// Descend walks the trie following the given letters in order,
// returning the node reached, or ok=false if any edge is missing.
func (node *TrieNode) Descend(letters []Letter) (*TrieNode, bool) {
	cur := node
	for _, l := range letters {
		child, ok := cur.Children[l]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// DescendWord is a convenience wrapper around Descend that accepts an
// uppercase string prefix instead of a Letter slice.
func (node *TrieNode) DescendWord(prefix string) (*TrieNode, bool) {
	letters, err := EncodeWord(prefix)
	if err != nil {
		return nil, false
	}
	return node.Descend(letters)
}

// Find reports whether word is a complete admissible word in the
// lexicon.
func (lex *Lexicon) Find(word string) bool {
	letters, err := EncodeWord(word)
	if err != nil {
		return false
	}
	node, ok := lex.Root.Descend(letters)
	return ok && node.Terminal
}
