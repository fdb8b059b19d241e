// Package exceptions loads the list of words that are accepted even though
// the dictionary does not know them.
package exceptions

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Set is a read-only set of lowercase exception words.
type Set map[string]struct{}

// New builds a Set from words, trimming and lowercasing each one.
func New(words ...string) Set {
	s := Set{}
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word, compared case-insensitively, is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Load reads a newline-delimited word list. Blank lines are ignored.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exception list: %w", err)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read exception list %s: %w", path, err)
	}
	return s, nil
}

// Read parses a word list from r.
func Read(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if w := strings.ToLower(strings.TrimSpace(line)); w != "" {
			s[w] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
