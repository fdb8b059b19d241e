package report

import (
	"encoding/json"
	"fmt"
	"io"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/redactyl/spellcheck/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndColumn   int `json:"endColumn"`
}

func sevToLevel(s types.Severity) string {
	if s == types.SevMajor {
		return "warning"
	}
	return "note"
}

// wordHash is stable across runs for the same word at the same place in the
// same file, unlike the Code Quality fingerprint which carries the index.
func wordHash(path string, f types.Finding) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%s\x00%s\x00%d\x00%d", path, f.Word, f.Line, f.Column))
	return fmt.Sprintf("%016x", sum)
}

// WriteSARIF writes findings as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, findings []types.Finding, path, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    "spellcheck",
			Version: version,
			Rules:   []sarifRule{{ID: checkName, ShortDescription: sarifMessage{Text: "Word not found in dictionary"}}},
		}},
		Results: []sarifResult{},
	}
	for _, iss := range Issues(findings, path) {
		run.Results = append(run.Results, sarifResult{
			RuleID:  checkName,
			Level:   sevToLevel(iss.Severity),
			Message: sarifMessage{Text: iss.Description},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: path},
					Region: sarifRegion{
						StartLine:   iss.Location.Positions.Begin.Line,
						StartColumn: iss.Location.Positions.Begin.Column,
						EndColumn:   iss.Location.Positions.End.Column,
					},
				},
			}},
		})
	}
	for i := range run.Results {
		run.Results[i].PartialFingerprints = map[string]string{"wordHash/v1": wordHash(path, findings[i])}
	}
	doc := sarif{
		Version: "2.1.0",
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
