package monitor

// Holding is one position of the fund, as parsed from the provider feed.
// Weight keeps the raw textual form of the feed ("5.32", "5.32%"); it is
// parsed only when two snapshots are compared.
type Holding struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Weight string `json:"weight"`
}

// byTicker folds holdings into a map keyed by ticker. When the feed carries
// the same ticker twice, the last row wins.
func byTicker(holdings []Holding) map[string]Holding {
	m := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		m[h.Ticker] = h
	}
	return m
}
