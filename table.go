package main

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrColumnCount = errors.New("expected 3 or 4 columns")
	ErrBadValue    = errors.New("bad value")
	ErrZeroSum     = errors.New("components sum to zero")
)

// Table is a loaded composition table: one header name and one value per
// column, rows kept in file order.
type Table struct {
	Header []string
	Rows   [][]float64
}

// Components returns the number of columns, 3 or 4 for any loaded table.
func (t *Table) Components() int {
	return len(t.Header)
}

func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load table")
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

// ReadTable parses comma separated compositions. The first record names the
// columns. Every value must be finite and non-negative, and every row must
// have a positive sum so it can be normalized later.
func ReadTable(in io.Reader) (*Table, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrColumnCount, "empty table")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if n := len(header); n != 3 && n != 4 {
		return nil, errors.Wrapf(ErrColumnCount, "got %d", n)
	}
	t := &Table{Header: make([]string, len(header))}
	for i, h := range header {
		t.Header[i] = strings.TrimSpace(h)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read row")
		}
		line, _ := r.FieldPos(0)
		row, err := parseRow(record)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func parseRow(record []string) ([]float64, error) {
	row := make([]float64, len(record))
	sum := 0.0
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadValue, "column %d: %q is not a number", i+1, field)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, errors.Wrapf(ErrBadValue, "column %d: %q is not a finite non-negative number", i+1, field)
		}
		row[i] = v
		sum += v
	}
	if sum == 0 {
		return nil, ErrZeroSum
	}
	return row, nil
}
