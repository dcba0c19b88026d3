// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// AppendCSV appends records to the file at path, creating it with a header
// row when it does not exist yet. An empty slice leaves the file untouched.
func AppendCSV(path string, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, os.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report: %w", err)
	}

	if err := WriteCSV(f, records, isNew); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes records to w, preceded by the header when withHeader is set.
func WriteCSV(w io.Writer, records []Record, withHeader bool) error {
	cw := csv.NewWriter(w)
	if withHeader {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, r := range records {
		if err := cw.Write(r.row()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV loads every record of a report file. Header rows, including those
// of files concatenated by hand, are skipped.
func ReadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if slices.Equal(row, Header) {
			continue
		}
		r, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return records, nil
}
