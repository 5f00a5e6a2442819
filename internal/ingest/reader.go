// Package ingest reads NSF award search CSV exports into raw records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Reader loads award CSV exports with the fixed 25-column schema.
type Reader struct{}

// NewReader creates a new CSV reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile reads all award rows from a CSV file. The header must match the
// export schema exactly; any malformed row aborts the read.
func (r *Reader) ReadFile(path string) ([]models.RawAward, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	awards, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return awards, nil
}

// Read reads all award rows from an io.Reader.
func (r *Reader) Read(in io.Reader) ([]models.RawAward, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if err := CheckHeader(header); err != nil {
		return nil, err
	}

	// Header passed; every data row must match it.
	cr.FieldsPerRecord = models.ColumnCount

	var awards []models.RawAward

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		awards = append(awards, rowToRaw(row))
	}

	return awards, nil
}

// rowToRaw maps a 25-field CSV row onto a RawAward in export order.
func rowToRaw(row []string) models.RawAward {
	return models.RawAward{
		AwardNumber:           row[0],
		Title:                 row[1],
		NSFOrganization:       row[2],
		Programs:              row[3],
		StartDate:             row[4],
		LastAmendmentDate:     row[5],
		PrincipalInvestigator: row[6],
		State:                 row[7],
		Organization:          row[8],
		AwardInstrument:       row[9],
		ProgramManager:        row[10],
		EndDate:               row[11],
		AwardedAmountToDate:   row[12],
		CoPINames:             row[13],
		PIEmailAddress:        row[14],
		OrganizationStreet:    row[15],
		OrganizationCity:      row[16],
		OrganizationState:     row[17],
		OrganizationZip:       row[18],
		OrganizationPhone:     row[19],
		NSFDirectorate:        row[20],
		ProgramElementCodes:   row[21],
		ProgramReferenceCodes: row[22],
		ARRAAmount:            row[23],
		Abstract:              row[24],
	}
}
