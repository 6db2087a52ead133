package ishares

import (
	"context"
	"encoding/json"
	"os"
	"testing"
)

func TestExtractHoldings(t *testing.T) {
	// A trimmed-down envelope the way the endpoint really answers: rows of
	// mixed cell types, some of them unusable.
	envelope := `{
		"aaData": [
			["AAPL", "APPLE INC", "5.02", "Information Technology"],
			["MSFT", "MICROSOFT CORP", 4.1, "Information Technology"],
			["JPM", "JPMORGAN CHASE & CO", {"display": "3.50%", "raw": 3.5}],
			["XYZ"],
			[null, "NO TICKER", "1.0"],
			["CASH", "US DOLLAR", null]
		]
	}`

	var jobj any
	if err := json.Unmarshal([]byte(envelope), &jobj); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	holdings, err := extractHoldings(jobj)
	if err != nil {
		t.Fatalf("extractHoldings() error = %v", err)
	}

	// The one-cell row and the row without a usable ticker are skipped.
	if len(holdings) != 4 {
		t.Fatalf("extractHoldings() = %v, want 4 rows", holdings)
	}

	if got, want := holdings[0].Ticker, "AAPL"; got != want {
		t.Errorf("holdings[0].Ticker = %q, want %q", got, want)
	}
	if got, want := holdings[0].Weight, "5.02"; got != want {
		t.Errorf("holdings[0].Weight = %q, want %q", got, want)
	}
	if got, want := holdings[1].Weight, "4.1"; got != want {
		t.Errorf("holdings[1].Weight = %q, want %q (number cell)", got, want)
	}
	if got, want := holdings[2].Weight, "3.5"; got != want {
		t.Errorf("holdings[2].Weight = %q, want %q (raw preferred over display)", got, want)
	}
	if got, want := holdings[2].Name, "JPMORGAN CHASE & CO"; got != want {
		t.Errorf("holdings[2].Name = %q, want %q", got, want)
	}
	// The null weight cell is kept in raw form so the comparison skips it.
	if got := holdings[3].Weight; got == "" {
		t.Errorf("holdings[3].Weight = %q, want a non-empty unparseable marker", got)
	}
}

func TestExtractHoldings_MalformedEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		envelope string
	}{
		{"no holdings table", `{"other": []}`},
		{"table is not a list", `{"aaData": {"AAPL": 1}}`},
		{"table is empty", `{"aaData": []}`},
		{"envelope is a list", `[1, 2, 3]`},
		{"envelope is a scalar", `"maintenance"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tt.envelope), &jobj); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if _, err := extractHoldings(jobj); err == nil {
				t.Errorf("extractHoldings(%s) error = nil, want fetch error", tt.envelope)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want string
		ok   bool
	}{
		{"string", "AAPL", "AAPL", true},
		{"integral number", float64(5), "5", true},
		{"fractional number", 5.02, "5.02", true},
		{"raw and display", map[string]any{"display": "5.02%", "raw": 5.02}, "5.02", true},
		{"display only", map[string]any{"display": "5.02%"}, "5.02%", true},
		{"empty object", map[string]any{}, "", false},
		{"null", nil, "", false},
		{"bool", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cellString(tt.cell)
			if ok != tt.ok || got != tt.want {
				t.Errorf("cellString(%v) = %q, %v, want %q, %v", tt.cell, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHoldings_Live(t *testing.T) {
	if os.Getenv("ETFMON_LIVE_TEST") == "" {
		t.Skip("live endpoint test, set ETFMON_LIVE_TEST=1 to run")
	}

	client := New(DefaultURL, true)
	holdings, err := client.Holdings(context.Background())
	if err != nil {
		t.Fatalf("Holdings() unexpected error = %v", err)
	}
	if len(holdings) == 0 {
		t.Error("Holdings() returned no holdings")
	}
}
