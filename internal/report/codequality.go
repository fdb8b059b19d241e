package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/redactyl/spellcheck/internal/types"
)

const (
	checkName = "spelling"
	category  = "Style"
)

// Fingerprint identifies the i-th finding of a run. Word, position and index
// together keep repeated words distinct.
func Fingerprint(f types.Finding, i int) string {
	return fmt.Sprintf("spelling_error_%s_%d_%d_%d", f.Word, f.Line, f.Column, i)
}

// Issues converts findings into Code Quality issue records for path.
func Issues(findings []types.Finding, path string) []types.Issue {
	out := make([]types.Issue, 0, len(findings))
	for i, f := range findings {
		endCol := f.Column + utf8.RuneCountInString(f.Word)
		out = append(out, types.Issue{
			Type:        "issue",
			CheckName:   checkName,
			Description: f.Description,
			Categories:  []string{category},
			Severity:    f.Severity,
			Location: types.Location{
				Path:  path,
				Lines: types.Lines{Begin: f.Line, End: f.Line},
				Positions: types.Positions{
					Begin: types.Position{Line: f.Line, Column: f.Column},
					End:   types.Position{Line: f.Line, Column: endCol},
				},
			},
			Fingerprint: Fingerprint(f, i),
		})
	}
	return out
}

// WriteCodeQuality writes the issue array as indented JSON. Nothing is
// written when there are no findings.
func WriteCodeQuality(w io.Writer, findings []types.Finding, path string) error {
	if len(findings) == 0 {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(Issues(findings, path))
}

// SaveCodeQuality writes the issue array to file. Unlike WriteCodeQuality an
// empty run still produces a file holding an empty array, so CI artifact
// collection always finds it.
func SaveCodeQuality(file string, findings []types.Finding, path string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if len(findings) == 0 {
		_, err = io.WriteString(f, "[]\n")
	} else {
		err = WriteCodeQuality(f, findings, path)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
