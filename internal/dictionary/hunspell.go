package dictionary

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxBreakDepth bounds recursive BREAK splitting.
const maxBreakDepth = 8

// Hunspell is a dictionary backed by Hunspell .aff/.dic data. Lookups run
// affix analysis on the query instead of expanding every stem up front.
type Hunspell struct {
	aff   *affixFile
	words map[string][]string
}

// Parse builds a Hunspell dictionary from raw .aff and .dic contents. Both
// are transcoded to UTF-8 according to the SET directive of the affix file.
func Parse(affData, dicData []byte) (*Hunspell, error) {
	charset := declaredCharset(affData)
	affText, err := toUTF8(affData, charset)
	if err != nil {
		return nil, err
	}
	dicText, err := toUTF8(dicData, charset)
	if err != nil {
		return nil, err
	}
	aff, err := parseAffix(affText)
	if err != nil {
		return nil, err
	}
	h := &Hunspell{aff: aff, words: map[string][]string{}}
	if err := h.parseDic(dicText); err != nil {
		return nil, err
	}
	return h, nil
}

// Len returns the number of distinct stems.
func (h *Hunspell) Len() int { return len(h.words) }

func (h *Hunspell) parseDic(data []byte) error {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			first = false
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				continue
			}
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, flags := splitEntry(line)
		if word == "" {
			continue
		}
		h.words[word] = append(h.words[word], h.aff.parseFlags(flags)...)
	}
	return sc.Err()
}

// splitEntry separates "word/flags<TAB>morphology" into word and flags.
func splitEntry(line string) (word, flags string) {
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, ' '); i >= 0 {
		line = line[:i]
	}
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '/' {
			b.WriteByte('/')
			i++
			continue
		}
		if c == '/' {
			return b.String(), line[i+1:]
		}
		b.WriteByte(c)
	}
	return b.String(), ""
}

func hasFlag(flags []string, flag string) bool {
	if flag == "" {
		return false
	}
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Lookup reports whether word is spelled correctly.
func (h *Hunspell) Lookup(word string) bool {
	return h.lookup(word, 0)
}

func (h *Hunspell) lookup(word string, depth int) bool {
	if word == "" {
		return false
	}
	if h.check(word, true) {
		return true
	}
	for _, v := range caseVariants(word) {
		if h.check(v, false) {
			return true
		}
	}
	if depth >= maxBreakDepth {
		return false
	}
	return h.tryBreaks(word, depth)
}

func (h *Hunspell) tryBreaks(word string, depth int) bool {
	for _, p := range h.aff.breaks {
		switch {
		case strings.HasPrefix(p, "^"):
			if rest, ok := strings.CutPrefix(word, p[1:]); ok && rest != word && h.lookup(rest, depth+1) {
				return true
			}
		case strings.HasSuffix(p, "$"):
			if rest, ok := strings.CutSuffix(word, p[:len(p)-1]); ok && rest != word && h.lookup(rest, depth+1) {
				return true
			}
		default:
			if !strings.Contains(word, p) {
				continue
			}
			parts := strings.Split(word, p)
			ok := true
			for _, part := range parts {
				if part == "" || !h.lookup(part, depth+1) {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
	}
	return false
}

// caseVariants returns the forms to retry for capitalized or upper-case
// input: lowercase, and title case for all-caps words.
func caseVariants(word string) []string {
	lower := strings.ToLower(word)
	if lower == word {
		return nil
	}
	out := []string{lower}
	if strings.ToUpper(word) == word {
		r, size := utf8.DecodeRuneInString(lower)
		title := string(unicode.ToUpper(r)) + lower[size:]
		if title != word {
			out = append(out, title)
		}
	}
	return out
}

// check runs stem, prefix, suffix and cross-product analysis for one form.
func (h *Hunspell) check(word string, exactCase bool) bool {
	a := h.aff
	if flags, ok := h.words[word]; ok {
		if hasFlag(flags, a.forbidden) {
			return false
		}
		if !exactCase && hasFlag(flags, a.keepCase) {
			return false
		}
		if !hasFlag(flags, a.needAffix) {
			return true
		}
	}
	rs := []rune(word)
	if h.checkSuffix(rs, "", exactCase) {
		return true
	}
	for k := 0; k <= len(rs); k++ {
		for _, pfx := range a.prefixes[string(rs[:k])] {
			root := []rune(pfx.strip + string(rs[k:]))
			if len(root) == 0 || !pfx.cond.matchPrefix(root) {
				continue
			}
			if h.stemHas(string(root), pfx.flag, "", exactCase) {
				return true
			}
			if pfx.cross && h.checkSuffix(root, pfx.flag, exactCase) {
				return true
			}
		}
	}
	return false
}

// checkSuffix strips every suffix that rs ends with and looks the remaining
// root up. When withPrefix is set the root must also carry that prefix flag
// and the suffix must allow cross products.
func (h *Hunspell) checkSuffix(rs []rune, withPrefix string, exactCase bool) bool {
	n := len(rs)
	for k := 0; k <= n; k++ {
		for _, sfx := range h.aff.suffixes[string(rs[n-k:])] {
			if withPrefix != "" && !sfx.cross {
				continue
			}
			root := []rune(string(rs[:n-k]) + sfx.strip)
			if len(root) == 0 || !sfx.cond.matchSuffix(root) {
				continue
			}
			if h.stemHas(string(root), sfx.flag, withPrefix, exactCase) {
				return true
			}
		}
	}
	return false
}

func (h *Hunspell) stemHas(root, flag, also string, exactCase bool) bool {
	flags, ok := h.words[root]
	if !ok || !hasFlag(flags, flag) || hasFlag(flags, h.aff.forbidden) {
		return false
	}
	if !exactCase && hasFlag(flags, h.aff.keepCase) {
		return false
	}
	return also == "" || hasFlag(flags, also)
}
