package monitor

// HistoryReport represents a report on the archived snapshots and the
// day-over-day changes between them.
type HistoryReport struct {
	Fund    string
	Entries []HistoryEntry
}

// HistoryEntry represents a single archived day in the history report.
type HistoryEntry struct {
	Date     Date
	Holdings int
	Added    int
	Removed  int
	Moves    int
	FirstRun bool
}

// NewHistory computes the day-over-day change history over snapshots given
// oldest first. Each day is compared against the day just before it in the
// archive, the way the daily check would have seen it.
func NewHistory(fund string, snapshots []*Snapshot) *HistoryReport {
	report := &HistoryReport{
		Fund:    fund,
		Entries: []HistoryEntry{},
	}

	var previous *Snapshot
	for _, snapshot := range snapshots {
		c := Compare(snapshot, previous)
		report.Entries = append(report.Entries, HistoryEntry{
			Date:     c.Date,
			Holdings: c.TotalHoldings,
			Added:    len(c.Added),
			Removed:  len(c.Removed),
			Moves:    len(c.WeightChanges),
			FirstRun: c.FirstRun(),
		})
		previous = snapshot
	}

	return report
}
