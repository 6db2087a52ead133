// Package renderer converts monitor reports into markdown documents.
//
// Rendering is pure text construction: the renderer never reads the clock,
// the disk or the network, so a report can always be reproduced from its
// comparison alone.
package renderer

import (
	"fmt"
	"strings"

	monitor "github.com/Rupesh905/ETF-Monitor"
)

// maxWeightChanges is the number of weight moves listed in full; the rest is
// summarized in a trailing count.
const maxWeightChanges = 10

// ComparisonMarkdown renders a daily comparison to a markdown string.
func ComparisonMarkdown(fund string, c *monitor.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — Daily Holdings Report\n\n", fund)
	fmt.Fprintf(&b, "*Report Date: %s*\n\n", c.Date)

	if c.FirstRun() {
		fmt.Fprintf(&b, "Total Holdings: %d\n\n", c.TotalHoldings)
		b.WriteString("This is the first data collection: no previous data is available for\n")
		b.WriteString("comparison. Today's snapshot is the baseline for future reports.\n\n")
		writeFooter(&b, c)
		return b.String()
	}

	fmt.Fprintf(&b, "*Comparing with: %s*\n\n", c.PreviousDate)
	fmt.Fprintf(&b, "Total Holdings: %d\n\n", c.TotalHoldings)
	fmt.Fprintf(&b, "Total Changes Detected: %d\n\n", c.Significant())

	if c.Significant() == 0 {
		b.WriteString("No significant changes detected since last update.\n\n")
		writeFooter(&b, c)
		return b.String()
	}

	if len(c.Added) > 0 {
		fmt.Fprintf(&b, "## New Holdings Added (%d)\n\n", len(c.Added))
		writePositions(&b, c.Added)
		b.WriteString("\n")
	}

	if len(c.Removed) > 0 {
		fmt.Fprintf(&b, "## Holdings Removed (%d)\n\n", len(c.Removed))
		writePositions(&b, c.Removed)
		b.WriteString("\n")
	}

	if len(c.WeightChanges) > 0 {
		fmt.Fprintf(&b, "## Significant Weight Changes (Top %d)\n\n", maxWeightChanges)
		for i, w := range c.WeightChanges {
			if i == maxWeightChanges {
				break
			}
			if w.Name != "" {
				fmt.Fprintf(&b, "- **%s** %s: %s → %s (%s)\n", w.Ticker, w.Name, w.Previous, w.Current, w.Change.SignedString())
			} else {
				fmt.Fprintf(&b, "- **%s**: %s → %s (%s)\n", w.Ticker, w.Previous, w.Current, w.Change.SignedString())
			}
		}
		if more := len(c.WeightChanges) - maxWeightChanges; more > 0 {
			fmt.Fprintf(&b, "\n...and %d more weight changes\n", more)
		}
		b.WriteString("\n")
	}

	writeFooter(&b, c)
	return b.String()
}

func writePositions(b *strings.Builder, positions []monitor.Position) {
	for _, p := range positions {
		if p.Name != "" {
			fmt.Fprintf(b, "- **%s** — %s\n", p.Ticker, p.Name)
		} else {
			fmt.Fprintf(b, "- **%s**\n", p.Ticker)
		}
	}
}

func writeFooter(b *strings.Builder, c *monitor.Comparison) {
	fmt.Fprintf(b, "*Generated: %s*\n", c.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"))
}
