package monitor

import (
	"testing"
	"time"
)

var testInstant = time.Date(2025, 8, 22, 14, 30, 0, 0, time.UTC)

func snapshotOn(on string, holdings ...Holding) *Snapshot {
	return NewSnapshot(MustParse(on), testInstant, holdings)
}

func TestCompare_FirstRun(t *testing.T) {
	current := snapshotOn("2025-08-22",
		Holding{"AAPL", "Apple Inc", "5.00"},
		Holding{"MSFT", "Microsoft Corp", "4.00"},
	)

	c := Compare(current, nil)

	if !c.FirstRun() {
		t.Errorf("FirstRun() = false, want true")
	}
	if got, want := c.TotalHoldings, 2; got != want {
		t.Errorf("TotalHoldings = %v, want %v", got, want)
	}
	if got, want := c.Significant(), 0; got != want {
		t.Errorf("Significant() = %v, want %v", got, want)
	}
	if len(c.Added) != 0 || len(c.Removed) != 0 || len(c.WeightChanges) != 0 {
		t.Errorf("first run carries changes: added=%v removed=%v moves=%v", c.Added, c.Removed, c.WeightChanges)
	}
}

func TestCompare_DayOverDay(t *testing.T) {
	previous := snapshotOn("2025-08-21",
		Holding{"AAPL", "Apple Inc", "5.00"},
		Holding{"MSFT", "Microsoft Corp", "4.00"},
	)
	current := snapshotOn("2025-08-22",
		Holding{"AAPL", "Apple Inc", "5.02"},
		Holding{"GOOG", "Alphabet Inc", "3.00"},
	)

	c := Compare(current, previous)

	if c.FirstRun() {
		t.Fatalf("FirstRun() = true, want false")
	}
	if got, want := c.PreviousDate, MustParse("2025-08-21"); got != want {
		t.Errorf("PreviousDate = %v, want %v", got, want)
	}

	// GOOG entered, MSFT left, AAPL moved by +0.02 which is above the
	// 0.01 significance threshold: three changes in total.
	if got, want := c.Significant(), 3; got != want {
		t.Errorf("Significant() = %v, want %v", got, want)
	}

	if len(c.Added) != 1 || c.Added[0] != (Position{"GOOG", "Alphabet Inc"}) {
		t.Errorf("Added = %v, want [GOOG Alphabet Inc]", c.Added)
	}
	if len(c.Removed) != 1 || c.Removed[0] != (Position{"MSFT", "Microsoft Corp"}) {
		t.Errorf("Removed = %v, want [MSFT Microsoft Corp]", c.Removed)
	}

	if len(c.WeightChanges) != 1 {
		t.Fatalf("WeightChanges = %v, want a single AAPL entry", c.WeightChanges)
	}
	move := c.WeightChanges[0]
	if move.Ticker != "AAPL" {
		t.Errorf("WeightChanges[0].Ticker = %q, want %q", move.Ticker, "AAPL")
	}
	if got, want := move.Previous, W(5.00); !got.Equal(want) {
		t.Errorf("Previous = %v, want %v", got, want)
	}
	if got, want := move.Current, W(5.02); !got.Equal(want) {
		t.Errorf("Current = %v, want %v", got, want)
	}
	if got, want := move.Change, W(0.02); !got.Equal(want) {
		t.Errorf("Change = %v, want %v", got, want)
	}
}

func TestCompare_SameSnapshotHasNoChanges(t *testing.T) {
	holdings := []Holding{
		{"AAPL", "Apple Inc", "5.00"},
		{"MSFT", "Microsoft Corp", "4.00"},
		{"JPM", "JPMorgan Chase", "3.50"},
	}
	previous := snapshotOn("2025-08-21", holdings...)
	current := snapshotOn("2025-08-22", holdings...)

	c := Compare(current, previous)

	if got, want := c.Significant(), 0; got != want {
		t.Errorf("Significant() = %v, want %v", got, want)
	}
}

func TestCompare_Threshold(t *testing.T) {
	tests := []struct {
		name    string
		prev    string
		cur     string
		emitted bool
	}{
		{"move of exactly 0.01 is not significant", "1.00", "1.01", false},
		{"move of 0.0101 is significant", "1.00", "1.0101", true},
		{"negative move of exactly 0.01 is not significant", "1.01", "1.00", false},
		{"negative move of 0.0101 is significant", "1.0101", "1.00", true},
		{"no move at all", "1.00", "1.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := snapshotOn("2025-08-21", Holding{"AAPL", "Apple Inc", tt.prev})
			current := snapshotOn("2025-08-22", Holding{"AAPL", "Apple Inc", tt.cur})

			c := Compare(current, previous)
			if got := len(c.WeightChanges) == 1; got != tt.emitted {
				t.Errorf("emitted = %v, want %v (changes: %v)", got, tt.emitted, c.WeightChanges)
			}
		})
	}
}

func TestCompare_SortsMovesByMagnitude(t *testing.T) {
	previous := snapshotOn("2025-08-21",
		Holding{"AAA", "", "1.00"},
		Holding{"BBB", "", "1.00"},
		Holding{"CCC", "", "1.00"},
		Holding{"DDD", "", "1.00"},
	)
	current := snapshotOn("2025-08-22",
		Holding{"AAA", "", "1.03"}, // +0.03
		Holding{"BBB", "", "2.20"}, // +1.20
		Holding{"CCC", "", "0.50"}, // -0.50
		Holding{"DDD", "", "1.50"}, // +0.50, ties with CCC on magnitude
	)

	c := Compare(current, previous)

	if len(c.WeightChanges) != 4 {
		t.Fatalf("WeightChanges = %v, want 4 entries", c.WeightChanges)
	}
	// Descending magnitude; CCC before DDD because ties keep row order.
	want := []string{"BBB", "CCC", "DDD", "AAA"}
	for i, ticker := range want {
		if got := c.WeightChanges[i].Ticker; got != ticker {
			t.Errorf("WeightChanges[%d].Ticker = %q, want %q", i, got, ticker)
		}
	}
}

func TestCompare_DuplicateTickerLastRowWins(t *testing.T) {
	previous := snapshotOn("2025-08-21",
		Holding{"AAPL", "Apple Inc", "1.00"},
	)
	current := snapshotOn("2025-08-22",
		Holding{"AAPL", "Apple Inc", "1.00"},
		Holding{"AAPL", "Apple Inc", "2.00"},
	)

	c := Compare(current, previous)

	if len(c.WeightChanges) != 1 {
		t.Fatalf("WeightChanges = %v, want a single folded entry", c.WeightChanges)
	}
	if got, want := c.WeightChanges[0].Change, W(1.00); !got.Equal(want) {
		t.Errorf("Change = %v, want %v (last row wins)", got, want)
	}
	if got, want := c.TotalHoldings, 2; got != want {
		t.Errorf("TotalHoldings = %v, want %v (rows, not unique tickers)", got, want)
	}
}

func TestCompare_SkipsUnparseableWeights(t *testing.T) {
	tests := []struct {
		name string
		prev string
		cur  string
	}{
		{"unparseable current side", "5.00", "N/A"},
		{"unparseable previous side", "N/A", "5.00"},
		{"unparseable both sides", "--", "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := snapshotOn("2025-08-21", Holding{"AAPL", "Apple Inc", tt.prev})
			current := snapshotOn("2025-08-22", Holding{"AAPL", "Apple Inc", tt.cur})

			c := Compare(current, previous)
			if len(c.WeightChanges) != 0 {
				t.Errorf("WeightChanges = %v, want none", c.WeightChanges)
			}
			// The ticker is still a member of both sides.
			if len(c.Added) != 0 || len(c.Removed) != 0 {
				t.Errorf("membership changed: added=%v removed=%v", c.Added, c.Removed)
			}
		})
	}
}

func TestCompare_EmptyWeightMeansZero(t *testing.T) {
	previous := snapshotOn("2025-08-21", Holding{"AAPL", "Apple Inc", ""})
	current := snapshotOn("2025-08-22", Holding{"AAPL", "Apple Inc", "0.50"})

	c := Compare(current, previous)

	if len(c.WeightChanges) != 1 {
		t.Fatalf("WeightChanges = %v, want a single entry", c.WeightChanges)
	}
	if got, want := c.WeightChanges[0].Change, W(0.50); !got.Equal(want) {
		t.Errorf("Change = %v, want %v", got, want)
	}
}

func TestCompare_SortsMembershipByTicker(t *testing.T) {
	previous := snapshotOn("2025-08-21",
		Holding{"ZZZ", "Last Corp", "1.00"},
		Holding{"MMM", "Middle Corp", "1.00"},
	)
	current := snapshotOn("2025-08-22",
		Holding{"TTT", "Tango Inc", "1.00"},
		Holding{"BBB", "Bravo Inc", "1.00"},
	)

	c := Compare(current, previous)

	if len(c.Added) != 2 || c.Added[0].Ticker != "BBB" || c.Added[1].Ticker != "TTT" {
		t.Errorf("Added = %v, want sorted [BBB TTT]", c.Added)
	}
	if len(c.Removed) != 2 || c.Removed[0].Ticker != "MMM" || c.Removed[1].Ticker != "ZZZ" {
		t.Errorf("Removed = %v, want sorted [MMM ZZZ]", c.Removed)
	}
}
