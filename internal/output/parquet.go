// Package output persists the cleaned award table as a compressed columnar
// file, plus a manifest describing the run.
package output

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// ErrUnknownCompression is returned for unsupported compression names.
var ErrUnknownCompression = errors.New("unknown compression codec")

// codec maps a config compression name onto a parquet codec.
func codec(name string) (compress.Codec, error) {
	switch name {
	case "zstd":
		return &parquet.Zstd, nil
	case "snappy":
		return &parquet.Snappy, nil
	case "gzip":
		return &parquet.Gzip, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// WriteParquet writes awards to a parquet file with the given compression
// ("zstd", "snappy", or "gzip").
func WriteParquet(path string, awards []*models.Award, compression string) error {
	c, err := codec(compression)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	writer := parquet.NewGenericWriter[models.ParquetAward](f, parquet.Compression(c))

	rows := make([]models.ParquetAward, len(awards))
	for i, a := range awards {
		rows[i] = toParquet(a)
	}

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			f.Close()

			return fmt.Errorf("failed to write rows: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		f.Close()

		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return f.Close()
}

// ReadParquet reads a previously written award file back into memory.
func ReadParquet(path string) ([]*models.Award, error) {
	rows, err := parquet.ReadFile[models.ParquetAward](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}

	awards := make([]*models.Award, len(rows))
	for i := range rows {
		awards[i] = fromParquet(&rows[i])
	}

	return awards, nil
}

// listSeparator joins slice columns into flat parquet strings.
const listSeparator = "; "

func toParquet(a *models.Award) models.ParquetAward {
	return models.ParquetAward{
		AwardID:               a.AwardID,
		Title:                 a.Title,
		Programs:              strings.Join(a.Programs, listSeparator),
		StartDate:             a.StartDate.UnixMilli(),
		EndDate:               a.EndDate.UnixMilli(),
		StartYear:             int32(a.StartYear),
		Directorate:           a.Directorate,
		Instrument:            a.Instrument,
		Organization:          a.Organization,
		Organizations:         strings.Join(a.Organizations, listSeparator),
		OrgCount:              int32(a.OrgCount),
		PrincipalInvestigator: a.PrincipalInvestigator,
		Amount:                a.Amount,
		AmountAdjusted:        a.AmountAdjusted,
		ARRAAmount:            a.ARRAAmount,
		Abstract:              a.Abstract,
		AbstractWords:         int32(a.AbstractWords),
		Collaborative:         a.Collaborative,
	}
}

func fromParquet(r *models.ParquetAward) *models.Award {
	return &models.Award{
		AwardID:               r.AwardID,
		Title:                 r.Title,
		Programs:              splitJoined(r.Programs),
		StartDate:             unixMilli(r.StartDate),
		EndDate:               unixMilli(r.EndDate),
		StartYear:             int(r.StartYear),
		Directorate:           r.Directorate,
		Instrument:            r.Instrument,
		Organization:          r.Organization,
		Organizations:         splitJoined(r.Organizations),
		OrgCount:              int(r.OrgCount),
		PrincipalInvestigator: r.PrincipalInvestigator,
		Amount:                r.Amount,
		AmountAdjusted:        r.AmountAdjusted,
		ARRAAmount:            r.ARRAAmount,
		Abstract:              r.Abstract,
		AbstractWords:         int(r.AbstractWords),
		Collaborative:         r.Collaborative,
	}
}

func unixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func splitJoined(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, listSeparator)
}
