package report

import (
	"fmt"

	"github.com/redactyl/spellcheck/internal/exceptions"
	"github.com/redactyl/spellcheck/internal/types"
)

// Classify turns dictionary misses into findings. Words on the exception
// list are informational; everything else is major.
func Classify(misses []types.Token, exc exceptions.Set) []types.Finding {
	out := make([]types.Finding, 0, len(misses))
	for _, tok := range misses {
		f := types.Finding{Token: tok}
		if exc.Contains(tok.Word) {
			f.Severity = types.SevInfo
			f.Description = fmt.Sprintf("Spelling error: '%s' not found in dictionary, but found in the exception list", tok.Word)
		} else {
			f.Severity = types.SevMajor
			f.Description = fmt.Sprintf("Spelling error: '%s' not found in dictionary", tok.Word)
		}
		out = append(out, f)
	}
	return out
}
