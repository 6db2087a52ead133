package monitor

import "time"

// Snapshot is the full composition of the fund as fetched on a given day.
// One snapshot per calendar day is archived; fetching twice on the same day
// replaces the earlier capture.
type Snapshot struct {
	Date       Date      `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
	Holdings   []Holding `json:"holdings"`
	TotalCount int       `json:"total_count"`
}

// NewSnapshot returns a snapshot of the given holdings taken at the given
// instant. TotalCount is derived from the holdings.
func NewSnapshot(on Date, at time.Time, holdings []Holding) *Snapshot {
	return &Snapshot{
		Date:       on,
		Timestamp:  at.UTC(),
		Holdings:   holdings,
		TotalCount: len(holdings),
	}
}
