package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/ishares"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	refresh bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch and archive today's holdings without reporting" }
func (*fetchCmd) Usage() string {
	return `etfmon fetch [-refresh]

  Fetches the fund's current holdings and archives today's snapshot, without
  comparing or reporting. Useful to build up history before the first real
  daily check, or to decouple collection from reporting in a scheduler.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Bypass the daily fetch cache and rehit the endpoint")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	holdings, err := ishares.New(cfg.Fund.URL, c.refresh).Holdings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := monitor.NewSnapshot(monitor.Today(), time.Now(), holdings)
	filename, err := store.SaveSnapshot(snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully fetched %d holdings of %s into %s\n", len(holdings), cfg.Fund.Name, filename)
	return subcommands.ExitSuccess
}
