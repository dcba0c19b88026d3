// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedRecord indicates a CSV row that cannot be decoded.
var ErrMalformedRecord = errors.New("report: malformed record")

// Record is the outcome of one optimizer run on one (source, destination)
// test case.
type Record struct {
	RunID       string
	TestID      int // 1-based
	Source      int
	Destination int
	Algorithm   string
	Repeat      int // 1-based
	TimeMS      float64
	Cost        float64 // +Inf when no route was found
	PathLength  int     // nodes on the route, 0 when none
}

// Found reports whether the run produced a route.
func (r Record) Found() bool { return !math.IsInf(r.Cost, 1) }

// Header is the CSV column order.
var Header = []string{
	"run_id", "test_id", "source", "destination", "algorithm",
	"repeat", "time_ms", "cost", "path_length",
}

// infCost is the CSV spelling of +Inf.
const infCost = "inf"

// Name returns the report file name for now: report_YYYYMMDD_HHMMSS.csv.
func Name(now time.Time) string {
	return "report_" + now.Format("20060102_150405") + ".csv"
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// FormatCost renders cost with four decimals, or "inf".
func FormatCost(cost float64) string {
	if math.IsInf(cost, 1) {
		return infCost
	}
	return strconv.FormatFloat(cost, 'f', 4, 64)
}

// ParseCost is the inverse of FormatCost.
func ParseCost(s string) (float64, error) {
	if s == infCost {
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(s, 64)
}

func (r Record) row() []string {
	return []string{
		r.RunID,
		strconv.Itoa(r.TestID),
		strconv.Itoa(r.Source),
		strconv.Itoa(r.Destination),
		r.Algorithm,
		strconv.Itoa(r.Repeat),
		strconv.FormatFloat(r.TimeMS, 'f', 2, 64),
		FormatCost(r.Cost),
		strconv.Itoa(r.PathLength),
	}
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(Header) {
		return Record{}, ErrMalformedRecord
	}
	var (
		r    = Record{RunID: row[0], Algorithm: row[4]}
		errs []error
		atoi = func(s string) int {
			v, err := strconv.Atoi(s)
			errs = append(errs, err)
			return v
		}
	)
	r.TestID = atoi(row[1])
	r.Source = atoi(row[2])
	r.Destination = atoi(row[3])
	r.Repeat = atoi(row[5])
	r.PathLength = atoi(row[8])

	var err error
	r.TimeMS, err = strconv.ParseFloat(row[6], 64)
	errs = append(errs, err)
	r.Cost, err = ParseCost(row[7])
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return Record{}, errors.Join(ErrMalformedRecord, err)
	}
	return r, nil
}
