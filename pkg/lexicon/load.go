package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDictionaryFile loads a UTF-8 text file, one word per line, as
// described in spec.md §6: trailing CR/LF are stripped, words are
// uppercased, empty lines are ignored. Adapted from
// pkg/wordlist.LoadBrodaWordlist's scanning structure, without that
// format's Broda-specific ";SCORE" suffix.
func LoadDictionaryFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()
	return LoadDictionary(f)
}

// LoadDictionary loads a dictionary from an already-open reader.
func LoadDictionary(r io.Reader) (*Lexicon, error) {
	lex := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		lex.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary file: %w", err)
	}
	return lex, nil
}
