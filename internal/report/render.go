package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/spellcheck/internal/types"
)

type PrintOptions struct {
	NoColor  bool
	Duration time.Duration
	Tokens   int
}

func severityColor(s types.Severity, noColor bool) *color.Color {
	c := color.New(color.FgCyan)
	if s == types.SevMajor {
		c = color.New(color.FgRed, color.Bold)
	}
	if noColor {
		c.DisableColor()
	}
	return c
}

// PrintText writes one line per finding followed by a summary footer.
func PrintText(w io.Writer, findings []types.Finding, path string, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No spelling errors found ✓")
	} else {
		fmt.Fprintf(w, "Findings: %d\n", len(findings))
		for _, f := range findings {
			sev := severityColor(f.Severity, opts.NoColor).Sprintf("%-5s", f.Severity)
			fmt.Fprintf(w, "%s %s:%d:%d  %s\n", sev, path, f.Line, f.Column, f.Word)
		}
	}
	printFooter(w, findings, opts)
}

// PrintTable renders findings as a bordered table followed by a summary footer.
func PrintTable(w io.Writer, findings []types.Finding, path string, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No spelling errors found ✓")
		printFooter(w, findings, opts)
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Severity", "Word", "Location", "Description")
	for _, f := range findings {
		loc := path + ":" + strconv.Itoa(f.Line) + ":" + strconv.Itoa(f.Column)
		sev := severityColor(f.Severity, opts.NoColor).Sprint(string(f.Severity))
		if err := table.Append([]string{sev, f.Word, loc, f.Description}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	printFooter(w, findings, opts)
	return nil
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.Tokens <= 0 {
		return
	}
	info, major := Counts(findings)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (major: %d, info: %d)\n", len(findings), major, info)
	if opts.Tokens > 0 {
		fmt.Fprintf(w, "Words checked: %d\n", opts.Tokens)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Check duration: %.2fs\n", opts.Duration.Seconds())
	}
}
