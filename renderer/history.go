package renderer

import (
	"fmt"
	"strings"

	monitor "github.com/Rupesh905/ETF-Monitor"
)

// HistoryMarkdown renders the archive history to a markdown table, one row
// per archived day with its day-over-day change counts.
func HistoryMarkdown(r *monitor.HistoryReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# History for %s\n\n", r.Fund)

	if len(r.Entries) == 0 {
		b.WriteString("No snapshots archived yet. Run a daily check first.\n")
		return b.String()
	}

	b.WriteString("| Date | Holdings | Added | Removed | Weight Moves |\n")
	b.WriteString("|:---|---:|---:|---:|---:|\n")
	for _, e := range r.Entries {
		if e.FirstRun {
			// The oldest snapshot has nothing to compare against.
			fmt.Fprintf(&b, "| %s | %d | | | |\n", e.Date, e.Holdings)
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n", e.Date, e.Holdings, e.Added, e.Removed, e.Moves)
	}

	return b.String()
}
