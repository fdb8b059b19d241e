package report

import (
	"fmt"

	"github.com/redactyl/spellcheck/internal/types"
)

var severityRank = map[string]int{
	string(types.SevInfo):  1,
	string(types.SevMajor): 2,
}

// ValidateFailOn accepts "", "info" or "major".
func ValidateFailOn(failOn string) error {
	if failOn == "" || severityRank[failOn] > 0 {
		return nil
	}
	return fmt.Errorf("invalid --fail-on %q (want info|major)", failOn)
}

// ShouldFail reports whether any finding is at or above the failOn severity.
// An empty threshold never fails.
func ShouldFail(findings []types.Finding, failOn string) bool {
	th := severityRank[failOn]
	if th == 0 {
		return false
	}
	for _, f := range findings {
		if severityRank[string(f.Severity)] >= th {
			return true
		}
	}
	return false
}

// Counts returns the number of info and major findings.
func Counts(findings []types.Finding) (info, major int) {
	for _, f := range findings {
		if f.Severity == types.SevMajor {
			major++
		} else {
			info++
		}
	}
	return info, major
}
