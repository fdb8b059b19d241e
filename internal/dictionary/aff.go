package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type flagMode int

const (
	flagChar flagMode = iota
	flagLong
	flagNum
)

// affix is one PFX or SFX rule.
type affix struct {
	flag   string
	strip  string
	add    string
	cond   condition
	cross  bool
	prefix bool
}

// affixFile holds the parts of a .aff file that lookups depend on.
type affixFile struct {
	mode      flagMode
	aliases   [][]string
	prefixes  map[string][]*affix // keyed by added text
	suffixes  map[string][]*affix // keyed by added text
	needAffix string
	forbidden string
	keepCase  string
	breaks    []string
}

func newAffixFile() *affixFile {
	return &affixFile{
		prefixes: map[string][]*affix{},
		suffixes: map[string][]*affix{},
		breaks:   []string{"-", "^-", "-$"},
	}
}

// parseFlags splits a flag field according to the FLAG mode, resolving AF
// aliases when they are defined.
func (a *affixFile) parseFlags(field string) []string {
	if field == "" {
		return nil
	}
	if len(a.aliases) > 0 {
		if n, err := strconv.Atoi(field); err == nil {
			if n >= 1 && n <= len(a.aliases) {
				return a.aliases[n-1]
			}
			return nil
		}
	}
	return a.splitFlags(field)
}

func (a *affixFile) splitFlags(field string) []string {
	switch a.mode {
	case flagNum:
		var out []string
		for _, f := range strings.Split(field, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
		return out
	case flagLong:
		rs := []rune(field)
		out := make([]string, 0, (len(rs)+1)/2)
		for i := 0; i < len(rs); i += 2 {
			end := i + 2
			if end > len(rs) {
				end = len(rs)
			}
			out = append(out, string(rs[i:end]))
		}
		return out
	default:
		out := make([]string, 0, len(field))
		for _, r := range field {
			out = append(out, string(r))
		}
		return out
	}
}

// single returns the first flag of a directive value such as NEEDAFFIX.
func (a *affixFile) single(field string) string {
	if fs := a.splitFlags(field); len(fs) > 0 {
		return fs[0]
	}
	return ""
}

func parseAffix(data []byte) (*affixFile, error) {
	a := newAffixFile()
	pending := map[string]int{}
	cross := map[string]bool{}
	userBreaks := false
	aliasHeader := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "FLAG":
			if len(fields) < 2 {
				continue
			}
			switch fields[1] {
			case "long":
				a.mode = flagLong
			case "num":
				a.mode = flagNum
			default:
				a.mode = flagChar
			}
		case "AF":
			if len(fields) < 2 {
				continue
			}
			// the first AF line carries the count only
			if !aliasHeader {
				aliasHeader = true
				continue
			}
			a.aliases = append(a.aliases, a.splitFlags(fields[1]))
		case "NEEDAFFIX", "PSEUDOROOT":
			if len(fields) >= 2 {
				a.needAffix = a.single(fields[1])
			}
		case "FORBIDDENWORD":
			if len(fields) >= 2 {
				a.forbidden = a.single(fields[1])
			}
		case "KEEPCASE":
			if len(fields) >= 2 {
				a.keepCase = a.single(fields[1])
			}
		case "BREAK":
			if len(fields) < 2 {
				continue
			}
			if !userBreaks {
				userBreaks = true
				a.breaks = nil
				// header line: BREAK <count>
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue
				}
			}
			a.breaks = append(a.breaks, fields[1])
		case "PFX", "SFX":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: short %s entry", lineNo, fields[0])
			}
			key := fields[0] + " " + fields[1]
			if pending[key] == 0 {
				n, err := strconv.Atoi(fields[3])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad %s count %q", lineNo, fields[0], fields[3])
				}
				pending[key] = n
				cross[key] = fields[2] == "Y"
				continue
			}
			pending[key]--
			rule, err := a.parseRule(fields, cross[key])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if rule.prefix {
				a.prefixes[rule.add] = append(a.prefixes[rule.add], rule)
			} else {
				a.suffixes[rule.add] = append(a.suffixes[rule.add], rule)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *affixFile) parseRule(fields []string, cross bool) (*affix, error) {
	strip := fields[2]
	if strip == "0" {
		strip = ""
	}
	add := fields[3]
	if i := strings.IndexByte(add, '/'); i >= 0 {
		// continuation classes are not followed
		add = add[:i]
	}
	if add == "0" {
		add = ""
	}
	condText := "."
	if len(fields) >= 5 {
		condText = fields[4]
	}
	cond, err := parseCondition(condText)
	if err != nil {
		return nil, err
	}
	return &affix{
		flag:   fields[1],
		strip:  strip,
		add:    add,
		cond:   cond,
		cross:  cross,
		prefix: fields[0] == "PFX",
	}, nil
}
