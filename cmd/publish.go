package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/Rupesh905/ETF-Monitor/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
)

// publishCmd holds the flags for the 'publish' subcommand.
type publishCmd struct {
	outputDir string
	date      string
	all       bool
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate standalone HTML reports from the archive" }
func (*publishCmd) Usage() string {
	return `etfmon publish [-o <dir>] [-d <date> | -all]

  Renders archived change reports to standalone HTML pages, suitable for a
  static site. By default only the latest archived day is published; -all
  publishes every archived day.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated pages")
	f.StringVar(&c.date, "d", "", "Publish a single archived day")
	f.BoolVar(&c.all, "all", false, "Publish every archived day")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	dates, err := c.selectDates(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(dates) == 0 {
		fmt.Println("Archive is empty, nothing to publish.")
		return subcommands.ExitSuccess
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, on := range dates {
		snapshot, err := store.Load(on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		previous, err := store.LoadBefore(on)
		if err != nil {
			log.Printf("warning, cannot load snapshot before %s, publishing a first run: %v", on, err)
			previous = nil
		}

		md := renderer.ComparisonMarkdown(cfg.Fund.Name, monitor.Compare(snapshot, previous))
		page, err := htmlPage(cfg.Fund.Name, md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot render %s: %v\n", on, err)
			continue
		}

		filename := filepath.Join(c.outputDir, on.String()+".html")
		if err := os.WriteFile(filename, page, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot write %q: %v\n", filename, err)
			return subcommands.ExitFailure
		}
		log.Printf("create-report-page name=%q", filename)
	}

	return subcommands.ExitSuccess
}

// selectDates resolves the -d/-all flags into the list of days to publish.
func (c *publishCmd) selectDates(store *monitor.Store) ([]monitor.Date, error) {
	if c.date != "" {
		on, err := monitor.ParseDate(c.date)
		if err != nil {
			return nil, err
		}
		return []monitor.Date{on}, nil
	}
	dates, err := store.Dates()
	if err != nil {
		return nil, err
	}
	if c.all || len(dates) == 0 {
		return dates, nil
	}
	return dates[len(dates)-1:], nil
}

// htmlPage converts a markdown report into a minimal standalone HTML page.
func htmlPage(title, md string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=%q>\n<title>%s</title>\n</head>\n<body>\n", "utf-8", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
