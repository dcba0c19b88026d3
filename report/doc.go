// SPDX-License-Identifier: MIT

// Package report persists benchmark results: one Record per optimizer run,
// appended to a CSV file or stored in SQLite.
//
// CSV files are append-only. The header row is written only when the file
// is created, so several benchmark runs can share one report; the RunID
// column tells them apart. Costs of runs that found no route are written as
// "inf" and read back as +Inf.
package report
