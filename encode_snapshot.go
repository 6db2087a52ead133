package monitor

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// This file contains code to persist snapshots and reports in a folder, in a
// way that is human-readable and git-friendly. The main goal for such an
// archive is to live on a private github repo.
//
// The overall strategy is one file per calendar day:
//   holdings_2025-08-22.json for the snapshot,
//   report_2025-08-22.txt for the rendered report.
// The date is embedded in the filename, so lexicographic order of names is
// chronological order; file modification times are never consulted.

const snapshotFilesGlob = "holdings_*.json"
const snapshotFilePrefix = "holdings_"
const snapshotFileSuffix = ".json"

// Store reads and writes snapshots and reports in a flat data directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on first
// write.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the data directory the store is rooted at.
func (s *Store) Dir() string { return s.dir }

func (s *Store) snapshotFile(on Date) string {
	return filepath.Join(s.dir, snapshotFilePrefix+on.String()+snapshotFileSuffix)
}

func (s *Store) reportFile(on Date) string {
	return filepath.Join(s.dir, "report_"+on.String()+".txt")
}

// SaveSnapshot writes the snapshot for its date, replacing any capture
// already archived that day. It returns the name of the written file.
func (s *Store) SaveSnapshot(snapshot *Snapshot) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("persist error: cannot create data dir %q: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("persist error: cannot encode snapshot for %s: %w", snapshot.Date, err)
	}
	filename := s.snapshotFile(snapshot.Date)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	log.Printf("create-snapshot-file name=%q holdings=%d", filename, len(snapshot.Holdings))
	return filename, nil
}

// SaveReport archives the rendered report text next to its snapshot. It
// returns the name of the written file.
func (s *Store) SaveReport(on Date, text string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("persist error: cannot create data dir %q: %w", s.dir, err)
	}
	filename := s.reportFile(on)
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("persist error: cannot write %q: %w", filename, err)
	}
	log.Printf("create-report-file name=%q", filename)
	return filename, nil
}

// LoadReport returns the archived report text for a given day.
func (s *Store) LoadReport(on Date) (string, error) {
	filename := s.reportFile(on)
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("load error: cannot read %q: %w", filename, err)
	}
	return string(data), nil
}

// snapshotFiles returns all snapshot files in the store, sorted by filename
// in descending order (newest first).
func (s *Store) snapshotFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, snapshotFilesGlob))
	if err != nil {
		return nil, fmt.Errorf("load error: cannot list snapshots in %q: %w", s.dir, err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(files)))
	return files, nil
}

// readSnapshot decodes a single snapshot file.
func readSnapshot(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read %q: %w", filename, err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("load error: cannot parse %q: %w", filename, err)
	}
	return &snapshot, nil
}

// Load returns the snapshot taken on a given day.
func (s *Store) Load(on Date) (*Snapshot, error) {
	return readSnapshot(s.snapshotFile(on))
}

// LoadPrevious returns the snapshot a fresh fetch compares against: the
// second newest file in the store, the newest being the snapshot just
// written. It returns nil without error when the store holds fewer than two
// snapshots (first run).
func (s *Store) LoadPrevious() (*Snapshot, error) {
	files, err := s.snapshotFiles()
	if err != nil {
		return nil, err
	}
	if len(files) < 2 {
		return nil, nil
	}
	return readSnapshot(files[1])
}

// LoadBefore returns the most recent snapshot taken strictly before a given
// day, or nil when there is none.
func (s *Store) LoadBefore(on Date) (*Snapshot, error) {
	files, err := s.snapshotFiles()
	if err != nil {
		return nil, err
	}
	name := filepath.Base(s.snapshotFile(on))
	for _, f := range files {
		// Files are descending: the first name below the target is the
		// most recent one before it.
		if filepath.Base(f) < name {
			return readSnapshot(f)
		}
	}
	return nil, nil
}

// Snapshots loads every archived snapshot, oldest first.
func (s *Store) Snapshots() ([]*Snapshot, error) {
	files, err := s.snapshotFiles()
	if err != nil {
		return nil, err
	}
	list := make([]*Snapshot, 0, len(files))
	for i := len(files) - 1; i >= 0; i-- {
		snapshot, err := readSnapshot(files[i])
		if err != nil {
			return nil, err
		}
		list = append(list, snapshot)
	}
	return list, nil
}

// Dates returns the days with an archived snapshot, in ascending order.
func (s *Store) Dates() ([]Date, error) {
	files, err := s.snapshotFiles()
	if err != nil {
		return nil, err
	}
	dates := make([]Date, 0, len(files))
	for i := len(files) - 1; i >= 0; i-- {
		name := filepath.Base(files[i])
		str := strings.TrimSuffix(strings.TrimPrefix(name, snapshotFilePrefix), snapshotFileSuffix)
		d, err := ParseDate(str)
		if err != nil {
			return nil, fmt.Errorf("load error: bad snapshot filename %q: %w", name, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
