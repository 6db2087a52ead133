package cmd

import (
	"fmt"
	"os"

	"github.com/Rupesh905/ETF-Monitor/ishares"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration: which fund to monitor and
// where to keep its archive.
type Config struct {
	Fund    FundConfig `yaml:"fund"`
	DataDir string     `yaml:"data_dir"`
}

// FundConfig identifies the monitored fund.
type FundConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultFund is the fund monitored when no configuration file is given.
const DefaultFund = "iShares US Financials ETF (IXG)"

// LoadConfig reads the optional YAML configuration file and fills in the
// defaults. An empty path means no file: defaults only, with the data folder
// taken from $ETF_DATA_DIR when set.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open config file: %w", err)
		}
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
		}
	}

	// Values may reference environment variables, e.g. data_dir: ${HOME}/etf.
	config.Fund.Name = os.ExpandEnv(config.Fund.Name)
	config.Fund.URL = os.ExpandEnv(config.Fund.URL)
	config.DataDir = os.ExpandEnv(config.DataDir)

	if config.Fund.Name == "" {
		config.Fund.Name = DefaultFund
	}
	if config.Fund.URL == "" {
		config.Fund.URL = ishares.DefaultURL
	}
	if config.DataDir == "" {
		if env := os.Getenv("ETF_DATA_DIR"); env != "" {
			config.DataDir = env
		} else {
			config.DataDir = "etf_data"
		}
	}

	return config, nil
}
