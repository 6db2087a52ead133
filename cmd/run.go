package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/ishares"
	"github.com/Rupesh905/ETF-Monitor/renderer"
	"github.com/google/subcommands"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	refresh bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run the daily holdings check" }
func (*runCmd) Usage() string {
	return `etfmon run [-refresh]

  Fetches the fund's current holdings, archives today's snapshot, compares
  it against the most recent prior snapshot, prints the change report, and
  archives the report next to the snapshot. Designed to be invoked once a
  day by an external scheduler.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Bypass the daily fetch cache and rehit the endpoint")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("Starting holdings check for %s\n", cfg.Fund.Name)

	holdings, err := ishares.New(cfg.Fund.URL, c.refresh).Holdings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "⚠️ Daily check completed with warnings: no comparison produced")
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully fetched %d holdings\n", len(holdings))

	snapshot := monitor.NewSnapshot(monitor.Today(), time.Now(), holdings)
	if _, err := store.SaveSnapshot(snapshot); err != nil {
		// Without an archived snapshot the baseline would silently shift,
		// so a save failure aborts the run.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	previous, err := store.LoadPrevious()
	if err != nil {
		log.Printf("warning, cannot load previous snapshot, reporting a first run: %v", err)
		previous = nil
	}

	comparison := monitor.Compare(snapshot, previous)
	report := renderer.ComparisonMarkdown(cfg.Fund.Name, comparison)
	printMarkdown(report)

	if filename, err := store.SaveReport(snapshot.Date, report); err != nil {
		log.Printf("warning, cannot archive report: %v", err)
	} else {
		fmt.Printf("Report saved to %s\n", filename)
	}

	fmt.Println("✅ Daily check completed successfully")
	return subcommands.ExitSuccess
}
