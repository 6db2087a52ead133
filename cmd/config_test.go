package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Rupesh905/ETF-Monitor/ishares"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") = %v", err)
	}
	if got, want := cfg.Fund.Name, DefaultFund; got != want {
		t.Errorf("Fund.Name = %q, want %q", got, want)
	}
	if got, want := cfg.Fund.URL, ishares.DefaultURL; got != want {
		t.Errorf("Fund.URL = %q, want %q", got, want)
	}
	if got, want := cfg.DataDir, "etf_data"; got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}
}

func TestLoadConfig_EnvDataDir(t *testing.T) {
	t.Setenv("ETF_DATA_DIR", "/tmp/archive")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") = %v", err)
	}
	if got, want := cfg.DataDir, "/tmp/archive"; got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("FUND_URL", "https://example.com/holdings.json")
	path := filepath.Join(t.TempDir(), "etfmon.yaml")
	content := `
fund:
  name: Example Fund
  url: ${FUND_URL}
data_dir: archive
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) = %v", path, err)
	}
	if got, want := cfg.Fund.Name, "Example Fund"; got != want {
		t.Errorf("Fund.Name = %q, want %q", got, want)
	}
	if got, want := cfg.Fund.URL, "https://example.com/holdings.json"; got != want {
		t.Errorf("Fund.URL = %q, want %q", got, want)
	}
	if got, want := cfg.DataDir, "archive"; got != want {
		t.Errorf("DataDir = %q, want %q", got, want)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadConfig on an absent file = nil, want error")
	}
}
