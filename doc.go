// Package monitor provides the core types and functions for tracking the
// daily composition of a single ETF. It is designed to be local-first and
// auditable: every day's holdings are archived as a plain JSON snapshot, and
// every report can be reproduced from the archive alone.
//
// The core functionalities include:
//   - Snapshots: a dated, timestamped capture of the fund's holdings as
//     fetched from the provider, persisted one file per calendar day.
//   - Comparison: a pure diff of two snapshots producing new holdings,
//     removed holdings, and significant weight changes (moves larger than
//     0.01 percentage points), computed with exact decimal arithmetic.
//   - Storage: encoding and decoding of snapshots and rendered reports to a
//     flat data directory of human-readable, version-controllable files.
//
// This package serves as the foundational logic for the `etfmon`
// command-line tool.
package monitor
