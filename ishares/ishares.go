// Package ishares fetches the published holdings of an iShares fund from
// the product page's ajax endpoint.
//
// The endpoint returns a JSON envelope whose "aaData" property holds the
// holdings table: one row per position, each row a list of cells. Cell
// types are inconsistent across products (plain strings, bare numbers, or
// {display,raw} objects), so every cell is coerced to its textual form and
// interpreted downstream.
package ishares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	monitor "github.com/Rupesh905/ETF-Monitor"
)

// DefaultURL is the holdings endpoint of the iShares US Financials ETF (IXG).
const DefaultURL = "https://www.ishares.com/us/products/239508/ishares-us-financials-etf/1467271812596.ajax?tab=all&fileType=json"

// The endpoint rejects non-browser agents, so the request presents itself
// as a regular Chrome session.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const holdingsPath = "$.aaData"

const fetchTimeout = 30 * time.Second

// Client fetches the holdings of a single iShares fund product.
type Client struct {
	client *http.Client
	url    string
}

// New returns a client for the given product holdings URL. Responses are
// cached on disk for the day unless refresh is set.
func New(url string, refresh bool) *Client {
	if refresh {
		return &Client{client: &http.Client{Timeout: fetchTimeout}, url: url}
	}
	return &Client{client: newDailyCachingClient(), url: url}
}

// Holdings performs the fetch and returns the fund's parsed holdings.
// Any failure here is terminal for a daily check: no snapshot, no report.
func (c *Client) Holdings(ctx context.Context) ([]monitor.Holding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch error: cannot build request for %q: %w", c.url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch error: cannot http GET %v: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch error: cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("fetch error: cannot read response from %v: %w", req.URL.Host, err)
	}

	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("fetch error: response from %v is not json: %w", req.URL.Host, err)
	}
	return extractHoldings(jobj)
}

// extractHoldings pulls the holdings table out of the response envelope and
// parses its rows. An envelope without a non-empty table is malformed: the
// endpoint answers 200 with an empty shell when the product is unknown.
func extractHoldings(jobj any) ([]monitor.Holding, error) {
	jval, err := jsonpath.Get(holdingsPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("fetch error: no holdings table at %q: %w", holdingsPath, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("fetch error: holdings table at %q is not a list", holdingsPath)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("fetch error: holdings table at %q is empty", holdingsPath)
	}
	return parseHoldings(rows), nil
}

// parseHoldings converts raw holdings rows into records. A row carries the
// ticker in cell 0, the display name in cell 1 and the weight in cell 2;
// rows with fewer than three cells are skipped entirely.
func parseHoldings(rows []any) []monitor.Holding {
	holdings := make([]monitor.Holding, 0, len(rows))
	for _, jrow := range rows {
		row, ok := jrow.([]any)
		if !ok || len(row) < 3 {
			continue
		}
		ticker, ok := cellString(row[0])
		if !ok {
			continue
		}
		name, _ := cellString(row[1])
		weight, ok := cellString(row[2])
		if !ok {
			// Keep the raw form: the comparison will fail to parse it and
			// exclude the ticker from weight moves, which is the intent.
			weight = fmt.Sprint(row[2])
		}
		holdings = append(holdings, monitor.Holding{Ticker: ticker, Name: name, Weight: weight})
	}
	return holdings
}

// cellString coerces one cell of a holdings row to its textual form.
func cellString(cell any) (string, bool) {
	switch v := cell.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case map[string]any:
		// {display,raw} objects: prefer raw, it is unformatted.
		if raw, ok := v["raw"].(float64); ok {
			return strconv.FormatFloat(raw, 'f', -1, 64), true
		}
		if display, ok := v["display"].(string); ok {
			return display, true
		}
	}
	return "", false
}
