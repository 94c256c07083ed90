// Package record persists a finished simulation run as CSV and reads it
// back for replay or verification.
package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"kalman-go/filter"
)

var header = []string{"step", "truth", "measurement", "estimate", "error_estimate"}

// WriteCSV writes one row per time step, preceded by a header row.
func WriteCSV(w io.Writer, res *filter.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for k := 0; k < res.Len(); k++ {
		row := []string{
			strconv.Itoa(k),
			strconv.FormatFloat(res.Truth[k], 'g', -1, 64),
			strconv.FormatFloat(res.Measurements[k], 'g', -1, 64),
			strconv.FormatFloat(res.Estimates[k], 'g', -1, 64),
			strconv.FormatFloat(res.ErrorEstimates[k], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the run to path, replacing any existing file.
func WriteFile(path string, res *filter.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a run written by WriteCSV.
func ReadCSV(r io.Reader) (*filter.Result, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty run file")
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(header), len(rows[0]))
	}
	for i, name := range header {
		if rows[0][i] != name {
			return nil, fmt.Errorf("unexpected header column %q, want %q", rows[0][i], name)
		}
	}

	n := len(rows) - 1
	res := &filter.Result{
		Truth:          make([]float64, n),
		Measurements:   make([]float64, n),
		Estimates:      make([]float64, n),
		ErrorEstimates: make([]float64, n),
	}
	for k, row := range rows[1:] {
		cols := []*float64{&res.Truth[k], &res.Measurements[k], &res.Estimates[k], &res.ErrorEstimates[k]}
		for i, dst := range cols {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", k+1, header[i+1], err)
			}
			*dst = v
		}
	}
	return res, nil
}

// ReadFile reads a run previously written with WriteFile.
func ReadFile(path string) (*filter.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
