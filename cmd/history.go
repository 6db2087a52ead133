package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the archived snapshots and their changes" }
func (*historyCmd) Usage() string {
	return `etfmon history

  Displays one line per archived day with its holdings count and the
  day-over-day changes against the previous archived snapshot.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshots, err := store.Snapshots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(monitor.NewHistory(cfg.Fund.Name, snapshots)))
	return subcommands.ExitSuccess
}
