package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DefaultLocale is the system dictionary used when no archive is given.
const DefaultLocale = "ru_RU"

// ErrNotFound is returned when no .aff/.dic pair can be located.
var ErrNotFound = errors.New("dictionary not found")

// Dictionary answers whether a word is spelled correctly.
type Dictionary interface {
	Lookup(word string) bool
}

// WordList is a flat, case-sensitive set of known words.
type WordList map[string]struct{}

// NewWordList builds a WordList from the given words.
func NewWordList(words ...string) WordList {
	wl := make(WordList, len(words))
	for _, w := range words {
		wl[w] = struct{}{}
	}
	return wl
}

func (wl WordList) Lookup(word string) bool {
	_, ok := wl[word]
	return ok
}

// SearchDirs returns the system Hunspell directories in lookup order:
// $DICPATH entries first, then the usual distribution locations.
func SearchDirs() []string {
	var dirs []string
	if p := os.Getenv("DICPATH"); p != "" {
		dirs = append(dirs, filepath.SplitList(p)...)
	}
	dirs = append(dirs,
		"/usr/share/hunspell",
		"/usr/share/myspell",
		"/usr/share/myspell/dicts",
		"/usr/local/share/hunspell",
		"/Library/Spelling",
	)
	if home, _ := os.UserHomeDir(); home != "" {
		dirs = append(dirs, filepath.Join(home, "Library", "Spelling"))
	}
	return dirs
}

// FromSystem loads <locale>.aff and <locale>.dic from the first directory in
// dirs that holds both. Directory entries may be glob patterns. When dirs is
// empty SearchDirs is used.
func FromSystem(locale string, dirs []string) (*Hunspell, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	if len(dirs) == 0 {
		dirs = SearchDirs()
	}
	for _, dir := range expandDirs(dirs) {
		aff := filepath.Join(dir, locale+".aff")
		dic := filepath.Join(dir, locale+".dic")
		affData, err := os.ReadFile(aff)
		if err != nil {
			continue
		}
		dicData, err := os.ReadFile(dic)
		if err != nil {
			continue
		}
		h, err := Parse(affData, dicData)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", aff, err)
		}
		return h, nil
	}
	return nil, fmt.Errorf("locale %s: %w", locale, ErrNotFound)
}

func expandDirs(dirs []string) []string {
	var out []string
	for _, d := range dirs {
		if d == "" {
			continue
		}
		if !strings.ContainsAny(d, "*?[{") {
			out = append(out, d)
			continue
		}
		matches, err := doublestar.FilepathGlob(d)
		if err != nil {
			continue
		}
		out = append(out, matches...)
	}
	return out
}

// FromArchive loads the dictionary packaged at path. The first .aff entry
// (in lexical order) that has a sibling .dic with the same stem is used.
func FromArchive(path string, limits Limits) (*Hunspell, error) {
	entries, err := readEntries(path, limits.withDefaults())
	if err != nil {
		return nil, err
	}
	aff, dic, ok := pickPair(entries)
	if !ok {
		return nil, fmt.Errorf("%s: no .aff/.dic pair: %w", path, ErrNotFound)
	}
	h, err := Parse(entries[aff], entries[dic])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", aff, err)
	}
	return h, nil
}
