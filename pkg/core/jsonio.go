package core

import (
	"encoding/json"
	"io"

	"github.com/redactyl/spellcheck/internal/report"
)

// Issues converts findings into Code Quality issues for path.
func Issues(findings []Finding, path string) []Issue {
	return report.Issues(findings, path)
}

// WriteCodeQuality writes findings as a Code Quality JSON array. Nothing is
// written when there are no findings.
func WriteCodeQuality(w io.Writer, findings []Finding, path string) error {
	return report.WriteCodeQuality(w, findings, path)
}

// UnmarshalIssues decodes a Code Quality report, useful for ingestion tests.
func UnmarshalIssues(r io.Reader) ([]Issue, error) {
	var issues []Issue
	if err := json.NewDecoder(r).Decode(&issues); err != nil {
		return nil, err
	}
	return issues, nil
}
