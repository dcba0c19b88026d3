// SPDX-License-Identifier: MIT

// Package benchmark compares the evolutionary and Q-learning optimizers on
// random (source, destination) cases over one network.
//
// For every case each optimizer runs Repeats times; every run is timed and
// yields one report.Record. Runs execute on a bounded worker pool and each
// run owns its optimizer, so the shared network is only read. Records come
// back ordered by case, then algorithm, then repeat, whatever the worker
// interleaving was.
package benchmark
