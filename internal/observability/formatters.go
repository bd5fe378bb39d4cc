// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jlindqvist/fundscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCriteria outputs a human-readable summary of the parsed criteria.
func (p *Printer) PrintCriteria(criteria *types.Criteria) {
	if criteria == nil {
		return
	}

	var sb strings.Builder

	if criteria.AgeRange != nil {
		switch {
		case criteria.AgeRange.Min != nil && criteria.AgeRange.Max != nil:
			sb.WriteString(fmt.Sprintf("Age:        %d-%d\n", *criteria.AgeRange.Min, *criteria.AgeRange.Max))
		case criteria.AgeRange.Min != nil:
			sb.WriteString(fmt.Sprintf("Age:        %d+\n", *criteria.AgeRange.Min))
		case criteria.AgeRange.Max != nil:
			sb.WriteString(fmt.Sprintf("Age:        under %d\n", *criteria.AgeRange.Max))
		}
	}
	if len(criteria.Genders) > 0 {
		genders := make([]string, len(criteria.Genders))
		for i, g := range criteria.Genders {
			genders[i] = string(g)
		}
		sb.WriteString(fmt.Sprintf("Gender:     %s\n", strings.Join(genders, ", ")))
	}
	if len(criteria.Conditions) > 0 {
		sb.WriteString(fmt.Sprintf("Conditions: %s\n", strings.Join(criteria.Conditions, ", ")))
	}
	if criteria.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:   %s\n", criteria.Location))
	}
	if sb.Len() == 0 {
		sb.WriteString("(no restrictions)\n")
	}

	p.printBox("Search Criteria", strings.TrimRight(sb.String(), "\n"))
}

// PrintWeights outputs the per-attribute point allocation for the run.
func (p *Printer) PrintWeights(weights types.WeightSet) {
	content := fmt.Sprintf("Conditions: %3d\nGender:     %3d\nAge:        %3d\nLocation:   %3d",
		weights.Conditions, weights.Gender, weights.Age, weights.Location)
	p.printBox("Score Weights", content)
}

// PrintMatches outputs the ranked match table.
func (p *Printer) PrintMatches(matches []types.ScoredProfile) {
	var sb strings.Builder

	if len(matches) == 0 {
		sb.WriteString("(no matches)")
	}
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		name := match.Profile.Name
		if name == "" {
			name = "(unknown)"
		}
		sb.WriteString(fmt.Sprintf("%3d  %-24s %s\n", match.MatchScore, name, match.Profile.CampaignURL))
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("Matches (%d)", len(matches)), strings.TrimRight(sb.String(), "\n"))
}
