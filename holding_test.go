package monitor

import "testing"

func TestByTicker_LastRowWins(t *testing.T) {
	holdings := []Holding{
		{"AAPL", "Apple Inc", "5.00"},
		{"MSFT", "Microsoft Corp", "4.00"},
		{"AAPL", "Apple Inc", "5.10"},
	}

	m := byTicker(holdings)

	if got, want := len(m), 2; got != want {
		t.Fatalf("len(byTicker) = %v, want %v", got, want)
	}
	if got, want := m["AAPL"].Weight, "5.10"; got != want {
		t.Errorf("AAPL weight = %q, want %q", got, want)
	}
}
