package report

import (
	"fmt"
	"io"
	"os"

	"github.com/redactyl/spellcheck/internal/types"
)

// WriteHumanReport writes the plain-text Markdown-ish summary of a run.
func WriteHumanReport(w io.Writer, findings []types.Finding, path string) error {
	_, major := Counts(findings)
	if _, err := fmt.Fprintf(w, "# Spelling Analysis Report\nFile: %s\nTotal errors: %d\nCritical errors: %d\n\n## Errors:\n",
		path, len(findings), major); err != nil {
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintf(w, "- '%s' at line %d, column %d\n", f.Word, f.Line, f.Column); err != nil {
			return err
		}
	}
	return nil
}

// SaveHumanReport writes the plain-text report to file.
func SaveHumanReport(file string, findings []types.Finding, path string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := WriteHumanReport(f, findings, path); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
