package monitor

import (
	"sort"
	"time"
)

// Position identifies a holding that entered or left the fund.
type Position struct {
	Ticker string
	Name   string
}

// WeightChange is a significant weight move of a single holding between two
// snapshots.
type WeightChange struct {
	Ticker   string
	Name     string
	Previous Weight
	Current  Weight
	Change   Weight // Current minus Previous, signed
}

// Comparison represents an analysis of the fund composition over one day.
// It is computed by comparing two Snapshots: the current one and the most
// recent one before it.
type Comparison struct {
	Date          Date
	Timestamp     time.Time
	PreviousDate  Date // zero when no previous snapshot exists
	TotalHoldings int
	Added         []Position
	Removed       []Position
	WeightChanges []WeightChange
}

// FirstRun reports whether there was no previous snapshot to compare
// against, making the current snapshot the baseline for future comparisons.
func (c *Comparison) FirstRun() bool { return c.PreviousDate.IsZero() }

// Significant returns the total number of changes detected: new holdings,
// removed holdings, and significant weight moves.
func (c *Comparison) Significant() int {
	return len(c.Added) + len(c.Removed) + len(c.WeightChanges)
}

// Compare diffs the current snapshot against the previous one. A nil
// previous yields a first-run comparison that carries the current totals
// only. Compare is pure: it never reads the clock or the disk.
func Compare(current, previous *Snapshot) *Comparison {
	c := &Comparison{
		Date:          current.Date,
		Timestamp:     current.Timestamp,
		TotalHoldings: len(current.Holdings),
	}
	if previous == nil {
		return c
	}
	c.PreviousDate = previous.Date

	cur := byTicker(current.Holdings)
	prev := byTicker(previous.Holdings)

	for ticker, h := range cur {
		if _, ok := prev[ticker]; !ok {
			c.Added = append(c.Added, Position{Ticker: ticker, Name: h.Name})
		}
	}
	for ticker, h := range prev {
		if _, ok := cur[ticker]; !ok {
			c.Removed = append(c.Removed, Position{Ticker: ticker, Name: h.Name})
		}
	}
	sort.Slice(c.Added, func(i, j int) bool { return c.Added[i].Ticker < c.Added[j].Ticker })
	sort.Slice(c.Removed, func(i, j int) bool { return c.Removed[i].Ticker < c.Removed[j].Ticker })

	// Weight moves are computed over tickers present on both sides, visited
	// in current row order (first occurrence when the feed repeats a ticker).
	seen := make(map[string]bool, len(current.Holdings))
	for _, row := range current.Holdings {
		if seen[row.Ticker] {
			continue
		}
		seen[row.Ticker] = true

		p, ok := prev[row.Ticker]
		if !ok {
			continue
		}
		h := cur[row.Ticker] // folded value, last row wins

		curW, err := ParseWeight(h.Weight)
		if err != nil {
			// An unparseable weight on either side excludes the ticker,
			// silently. It still counts for added/removed membership.
			continue
		}
		prevW, err := ParseWeight(p.Weight)
		if err != nil {
			continue
		}
		change := curW.Sub(prevW)
		if !change.Significant() {
			continue
		}
		c.WeightChanges = append(c.WeightChanges, WeightChange{
			Ticker:   row.Ticker,
			Name:     h.Name,
			Previous: prevW,
			Current:  curW,
			Change:   change,
		})
	}
	sort.SliceStable(c.WeightChanges, func(i, j int) bool {
		return c.WeightChanges[j].Change.Abs().LessThan(c.WeightChanges[i].Change.Abs())
	})

	return c
}
