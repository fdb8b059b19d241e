package types

// Severity is the Code Quality severity assigned to a finding.
type Severity string

const (
	SevInfo  Severity = "info"
	SevMajor Severity = "major"
)

// Token is a candidate word extracted from text. Word is lowercased; Line and
// Column are 1-based; Start and End are global rune offsets into the text.
type Token struct {
	Word   string `json:"word"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Start  int    `json:"start_offset"`
	End    int    `json:"end_offset"`
}

// Finding is a token that was not found in the dictionary, classified
// against the exception list.
type Finding struct {
	Token
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Issue is one record of a GitLab Code Quality report.
type Issue struct {
	Type        string   `json:"type"`
	CheckName   string   `json:"check_name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Severity    Severity `json:"severity"`
	Location    Location `json:"location"`
	Fingerprint string   `json:"fingerprint"`
}

type Location struct {
	Path      string    `json:"path"`
	Lines     Lines     `json:"lines"`
	Positions Positions `json:"positions"`
}

type Lines struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

type Positions struct {
	Begin Position `json:"begin"`
	End   Position `json:"end"`
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}
