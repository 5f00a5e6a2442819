// Package cpi loads annual Consumer Price Index values and converts nominal
// dollar amounts to a fixed reference year.
package cpi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CPI table errors.
var (
	ErrEmptySheet   = errors.New("CPI sheet contains no data rows")
	ErrMissingYear  = errors.New("no CPI value for year")
	ErrMissingBase  = errors.New("no CPI value for base year")
	ErrInvalidValue = errors.New("CPI value must be positive")
)

// Table holds annual CPI values indexed by year, with a fixed base year.
type Table struct {
	values   map[int]float64
	baseYear int
}

// NewTable builds a table from year-indexed CPI values. The base year must
// be present.
func NewTable(values map[int]float64, baseYear int) (*Table, error) {
	if _, ok := values[baseYear]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingBase, baseYear)
	}

	for year, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("%w: year %d has %v", ErrInvalidValue, year, v)
		}
	}

	return &Table{values: values, baseYear: baseYear}, nil
}

// LoadTable reads annual CPI values from a workbook sheet laid out as a
// header row followed by Year | Annual-average rows.
func LoadTable(path, sheet string, baseYear int) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CPI workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	values := make(map[int]float64)

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			// Trailing footnote rows are common in BLS exports.
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad CPI value %q: %w", i+1, row[1], err)
		}

		values[year] = value
	}

	if len(values) == 0 {
		return nil, ErrEmptySheet
	}

	return NewTable(values, baseYear)
}

// BaseYear returns the reference year amounts are converted into.
func (t *Table) BaseYear() int {
	return t.baseYear
}

// Years returns how many years the table covers.
func (t *Table) Years() int {
	return len(t.values)
}

// Ratio returns CPI[year] / CPI[baseYear]. The base year's ratio is
// exactly 1.0.
func (t *Table) Ratio(year int) (float64, error) {
	if year == t.baseYear {
		return 1.0, nil
	}

	v, ok := t.values[year]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrMissingYear, year)
	}

	return v / t.values[t.baseYear], nil
}

// Adjust converts a nominal amount from the given year into base-year
// dollars.
func (t *Table) Adjust(amount float64, year int) (float64, error) {
	ratio, err := t.Ratio(year)
	if err != nil {
		return 0, err
	}

	return amount / ratio, nil
}
