package dictionary

import "fmt"

// condElem matches one rune of an affix condition: any rune, a literal, or a
// (possibly negated) bracket set.
type condElem struct {
	any    bool
	negate bool
	set    []rune
}

func (e condElem) match(r rune) bool {
	if e.any {
		return true
	}
	for _, s := range e.set {
		if s == r {
			return !e.negate
		}
	}
	return e.negate
}

type condition []condElem

func parseCondition(text string) (condition, error) {
	if text == "." {
		return nil, nil
	}
	rs := []rune(text)
	var out condition
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '.':
			out = append(out, condElem{any: true})
		case '[':
			j := i + 1
			e := condElem{}
			if j < len(rs) && rs[j] == '^' {
				e.negate = true
				j++
			}
			for j < len(rs) && rs[j] != ']' {
				e.set = append(e.set, rs[j])
				j++
			}
			if j >= len(rs) {
				return nil, fmt.Errorf("unterminated condition %q", text)
			}
			out = append(out, e)
			i = j
		default:
			out = append(out, condElem{set: []rune{rs[i]}})
		}
	}
	return out, nil
}

// matchSuffix reports whether the condition matches the end of word.
func (c condition) matchSuffix(word []rune) bool {
	if len(c) > len(word) {
		return false
	}
	off := len(word) - len(c)
	for i, e := range c {
		if !e.match(word[off+i]) {
			return false
		}
	}
	return true
}

// matchPrefix reports whether the condition matches the start of word.
func (c condition) matchPrefix(word []rune) bool {
	if len(c) > len(word) {
		return false
	}
	for i, e := range c {
		if !e.match(word[i]) {
			return false
		}
	}
	return true
}
