package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Schema errors.
var (
	ErrColumnCount  = errors.New("unexpected column count")
	ErrColumnHeader = errors.New("unexpected column header")
)

// CheckHeader verifies that a CSV header row matches the fixed 25-column
// NSF award export schema. Comparison ignores surrounding whitespace and a
// UTF-8 BOM on the first column.
func CheckHeader(header []string) error {
	if len(header) != models.ColumnCount {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(header), models.ColumnCount)
	}

	for i, got := range header {
		got = strings.TrimSpace(strings.TrimPrefix(got, "\uFEFF"))
		if got != models.CSVHeader[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrColumnHeader, i+1, got, models.CSVHeader[i])
		}
	}

	return nil
}
