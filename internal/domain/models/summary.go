package models

import (
	"strings"
	"time"
)

// SectionDivider delimits per-repository sections inside the aggregated
// release-notes text. The Slack publisher splits on this exact string.
var SectionDivider = strings.Repeat("─", 50)

type (
	// SummaryDocument is the structured reply expected from the AI provider.
	SummaryDocument struct {
		Categories []Category `json:"categories"`
	}

	// Category groups related release-note items under one heading.
	Category struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}
)

// DateRange is the merge window [Start, End] used to select pull requests.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds the merge window for the given look-back in days,
// ending at the given instant.
func NewDateRange(end time.Time, daysBack int) DateRange {
	return DateRange{
		Start: end.AddDate(0, 0, -daysBack),
		End:   end,
	}
}

// Label renders the window for display, e.g. "18 Aug 2026 - 25 Aug 2026".
func (d DateRange) Label() string {
	return d.Start.Format("02 Jan 2006") + " - " + d.End.Format("02 Jan 2006")
}
