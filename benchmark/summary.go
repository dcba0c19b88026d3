// SPDX-License-Identifier: MIT

package benchmark

import (
	"github.com/katalvlaran/netpath/report"
)

// Summary aggregates the records of one algorithm.
type Summary struct {
	Algorithm  string
	Runs       int
	Found      int
	MeanTimeMS float64
	MeanCost   float64 // over runs that found a route; 0 when none did
	BestCost   float64 // lowest cost found; 0 when none did
}

// FoundRatio returns Found/Runs, or 0 for an empty summary.
func (s Summary) FoundRatio() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Runs)
}

// Summarize groups records by algorithm in order of first appearance.
// Records with an empty Algorithm (unfinished runs) are ignored.
func Summarize(records []report.Record) []Summary {
	var (
		order []string
		acc   = make(map[string]*Summary)
		times = make(map[string]float64)
		costs = make(map[string]float64)
	)
	for _, r := range records {
		if r.Algorithm == "" {
			continue
		}
		s, ok := acc[r.Algorithm]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm}
			acc[r.Algorithm] = s
			order = append(order, r.Algorithm)
		}
		s.Runs++
		times[r.Algorithm] += r.TimeMS
		if r.Found() {
			if s.Found == 0 || r.Cost < s.BestCost {
				s.BestCost = r.Cost
			}
			s.Found++
			costs[r.Algorithm] += r.Cost
		}
	}

	out := make([]Summary, 0, len(order))
	for _, name := range order {
		s := acc[name]
		s.MeanTimeMS = times[name] / float64(s.Runs)
		if s.Found > 0 {
			s.MeanCost = costs[name] / float64(s.Found)
		}
		out = append(out, *s)
	}
	return out
}
