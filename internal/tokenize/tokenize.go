package tokenize

import (
	"strings"
	"unicode"

	"github.com/redactyl/spellcheck/internal/types"
)

// inClass reports whether r may appear inside a candidate word:
// ASCII letters, the basic Cyrillic alphabet including ё/Ё, and hyphens.
func inClass(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 'а' && r <= 'я', r >= 'А' && r <= 'Я':
		return true
	case r == 'ё', r == 'Ё', r == '-':
		return true
	}
	return false
}

func isLatin(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isWordRune mirrors Unicode \w: letters, numbers and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// boundary reports whether a word boundary sits before index i of line.
func boundary(line []rune, i int) bool {
	before := i > 0 && isWordRune(line[i-1])
	after := i < len(line) && isWordRune(line[i])
	return before != after
}

// newlines folds CRLF and lone CR line endings into LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Words returns every candidate word of text in reading order. Lines end at
// LF, CRLF or a lone CR. Runs made only
// of digits and hyphens are skipped, and so is any run containing a Latin
// letter.
func Words(text string) []types.Token {
	var out []types.Token
	offset := 0
	text = newlines.Replace(text)
	for lineNo, raw := range strings.Split(text, "\n") {
		line := []rune(raw)
		for _, span := range spans(line) {
			word := line[span[0]:span[1]]
			if skip(word) {
				continue
			}
			out = append(out, types.Token{
				Word:   strings.ToLower(string(word)),
				Line:   lineNo + 1,
				Column: span[0] + 1,
				Start:  offset + span[0],
				End:    offset + span[1],
			})
		}
		offset += len(line) + 1
	}
	return out
}

// spans finds the leftmost-first matches of a bounded run of class runes.
// The run is greedy and gives back runes from the right until its end lands
// on a word boundary.
func spans(line []rune) [][2]int {
	var out [][2]int
	for i := 0; i < len(line); {
		if !inClass(line[i]) || !boundary(line, i) {
			i++
			continue
		}
		end := i
		for end < len(line) && inClass(line[end]) {
			end++
		}
		for end > i && !boundary(line, end) {
			end--
		}
		if end == i {
			i++
			continue
		}
		out = append(out, [2]int{i, end})
		i = end
	}
	return out
}

func skip(word []rune) bool {
	digitsOnly := true
	for _, r := range word {
		if isLatin(r) {
			return true
		}
		if r != '-' && !unicode.IsDigit(r) {
			digitsOnly = false
		}
	}
	return digitsOnly
}
