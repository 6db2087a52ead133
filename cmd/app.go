// Package cmd implements the CLI application to monitor an ETF's holdings.
package cmd

import (
	"flag"

	monitor "github.com/Rupesh905/ETF-Monitor"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "monitoring")
	c.Register(&fetchCmd{}, "monitoring")

	c.Register(&reportCmd{}, "reporting")
	c.Register(&historyCmd{}, "reporting")
	c.Register(&publishCmd{}, "reporting")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the folder holding snapshots and reports (defaults to $ETF_DATA_DIR or \"etf_data\")")
var configFile = flag.String("config", "", "Path to an optional YAML configuration file")

// OpenStore returns the store for the app data folder, resolved from the
// application configuration.
func OpenStore() (*monitor.Store, *Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, nil, err
	}
	if *dataDir != "" {
		// The flag is authoritative over both the config file and the
		// environment.
		cfg.DataDir = *dataDir
	}
	return monitor.NewStore(cfg.DataDir), cfg, nil
}
