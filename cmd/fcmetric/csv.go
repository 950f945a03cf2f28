package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-forecast/series"
)

const (
	trueSuffix = "_true"
	predSuffix = "_pred"
)

// loadPairedCSV reads a CSV whose header pairs columns as <name>_true and
// <name>_pred, returning the true and predicted series with matching column
// order.
func loadPairedCSV(path string) (*series.Series, *series.Series, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	trueIdx := make(map[string]int)
	predIdx := make(map[string]int)
	var names []string

	for i, h := range header {
		switch {
		case strings.HasSuffix(h, trueSuffix):
			name := strings.TrimSuffix(h, trueSuffix)
			trueIdx[name] = i
			names = append(names, name)
		case strings.HasSuffix(h, predSuffix):
			predIdx[strings.TrimSuffix(h, predSuffix)] = i
		default:
			return nil, nil, fmt.Errorf("column %q is neither *%s nor *%s", h, trueSuffix, predSuffix)
		}
	}

	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no %s columns found", trueSuffix)
	}

	trueCols := make([][]float64, len(names))
	predCols := make([][]float64, len(names))
	for i, name := range names {
		pi, ok := predIdx[name]
		if !ok {
			return nil, nil, fmt.Errorf("column %s%s has no matching %s%s", name, trueSuffix, name, predSuffix)
		}

		trueCols[i], err = column(rows, trueIdx[name])
		if err != nil {
			return nil, nil, fmt.Errorf("column %s%s: %w", name, trueSuffix, err)
		}
		predCols[i], err = column(rows, pi)
		if err != nil {
			return nil, nil, fmt.Errorf("column %s%s: %w", name, predSuffix, err)
		}
	}

	yTrue, err := series.NewNamed(names, trueCols)
	if err != nil {
		return nil, nil, err
	}
	yPred, err := series.NewNamed(names, predCols)
	if err != nil {
		return nil, nil, err
	}
	return yTrue, yPred, nil
}

// loadSeriesCSV reads a CSV with plain column names and returns the columns
// named in wantNames, in that order.
func loadSeriesCSV(path string, wantNames []string) (*series.Series, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}

	cols := make([][]float64, len(wantNames))
	for i, name := range wantNames {
		j, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		cols[i], err = column(rows, j)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
	}

	return series.NewNamed(append([]string(nil), wantNames...), cols)
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("need a header row and at least one data row")
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	return header, records[1:], nil
}

func column(rows [][]string, idx int) ([]float64, error) {
	out := make([]float64, len(rows))
	for r, row := range rows {
		if idx >= len(row) {
			return nil, fmt.Errorf("row %d has %d fields", r+2, len(row))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+2, err)
		}
		out[r] = v
	}
	return out, nil
}
