package cpi

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// testValues are CPI-U annual averages, rounded.
var testValues = map[int]float64{
	2016: 240.0,
	2017: 245.1,
	2018: 251.1,
	2019: 255.7,
}

func TestNewTable_MissingBaseYear(t *testing.T) {
	if _, err := NewTable(testValues, 1990); !errors.Is(err, ErrMissingBase) {
		t.Fatalf("NewTable error = %v, want ErrMissingBase", err)
	}
}

func TestNewTable_InvalidValue(t *testing.T) {
	values := map[int]float64{2018: 251.1, 2019: -1}

	if _, err := NewTable(values, 2018); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("NewTable error = %v, want ErrInvalidValue", err)
	}
}

func TestTable_Ratio(t *testing.T) {
	table, err := NewTable(testValues, 2018)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	ratio, err := table.Ratio(2018)
	if err != nil {
		t.Fatalf("Ratio(2018) failed: %v", err)
	}

	if ratio != 1.0 {
		t.Errorf("base-year ratio = %v, want exactly 1.0", ratio)
	}

	ratio, err = table.Ratio(2016)
	if err != nil {
		t.Fatalf("Ratio(2016) failed: %v", err)
	}

	want := 240.0 / 251.1
	if math.Abs(ratio-want) > 1e-12 {
		t.Errorf("Ratio(2016) = %v, want %v", ratio, want)
	}

	if _, err := table.Ratio(1980); !errors.Is(err, ErrMissingYear) {
		t.Errorf("Ratio(1980) error = %v, want ErrMissingYear", err)
	}
}

func TestTable_Adjust(t *testing.T) {
	table, err := NewTable(testValues, 2018)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	// Base year amounts pass through unchanged.
	got, err := table.Adjust(100000, 2018)
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}

	if got != 100000 {
		t.Errorf("Adjust(100000, 2018) = %v, want 100000", got)
	}

	// Earlier dollars are worth more in base-year terms.
	got, err = table.Adjust(100000, 2016)
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}

	want := 100000 / (240.0 / 251.1)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Adjust(100000, 2016) = %v, want %v", got, want)
	}

	if got <= 100000 {
		t.Errorf("2016 dollars should inflate above nominal, got %v", got)
	}
}

// writeTestWorkbook builds a minimal CPI workbook for LoadTable.
func writeTestWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()

	index, err := f.NewSheet(sheet)
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	f.SetActiveSheet(index)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "cpi.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	return path
}

func TestLoadTable(t *testing.T) {
	path := writeTestWorkbook(t, "Annual", [][]interface{}{
		{"Year", "Annual"},
		{2017, 245.1},
		{2018, 251.1},
		{"Source: BLS", ""},
	})

	table, err := LoadTable(path, "Annual", 2018)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Years() != 2 {
		t.Errorf("Years() = %d, want 2", table.Years())
	}

	if table.BaseYear() != 2018 {
		t.Errorf("BaseYear() = %d, want 2018", table.BaseYear())
	}

	ratio, err := table.Ratio(2017)
	if err != nil {
		t.Fatalf("Ratio(2017) failed: %v", err)
	}

	want := 245.1 / 251.1
	if math.Abs(ratio-want) > 1e-12 {
		t.Errorf("Ratio(2017) = %v, want %v", ratio, want)
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	if _, err := LoadTable("/nonexistent/cpi.xlsx", "Annual", 2018); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestLoadTable_EmptySheet(t *testing.T) {
	path := writeTestWorkbook(t, "Annual", [][]interface{}{
		{"Year", "Annual"},
	})

	if _, err := LoadTable(path, "Annual", 2018); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("LoadTable error = %v, want ErrEmptySheet", err)
	}
}
