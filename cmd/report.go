package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date   string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "re-render a change report from archived snapshots" }
func (*reportCmd) Usage() string {
	return `etfmon report [-d <date>] [-o <file>]

  Renders the change report for an archived day entirely offline: the
  snapshot of that day is compared against the latest archived snapshot
  before it. No fetch is performed and nothing is written to the archive.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to report on (defaults to today). See 'etfmon topic dates' for supported formats.")
	f.StringVar(&c.output, "o", "", "Write the markdown report to a file instead of the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" {
		c.date = monitor.Today().String()
	}
	on, err := monitor.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshot, err := store.Load(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: no snapshot for %s: %v\n", on, err)
		return subcommands.ExitFailure
	}

	previous, err := store.LoadBefore(on)
	if err != nil {
		log.Printf("warning, cannot load snapshot before %s, reporting a first run: %v", on, err)
		previous = nil
	}

	report := renderer.ComparisonMarkdown(cfg.Fund.Name, monitor.Compare(snapshot, previous))

	if c.output != "" {
		if err := os.WriteFile(c.output, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Report saved to %s\n", c.output)
		return subcommands.ExitSuccess
	}

	printMarkdown(report)
	return subcommands.ExitSuccess
}
