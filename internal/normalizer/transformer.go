package normalizer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/WHOIGit/nsf-oce-topics/internal/cleaner"
	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// exportDateLayout is the month/day/year format used by award exports.
const exportDateLayout = "01/02/2006"

// ErrNotCurrency is returned for amount strings that are not dollar values.
var ErrNotCurrency = errors.New("not a currency value")

// Transformer converts validated raw rows into typed award records.
type Transformer struct {
	cleaner       *cleaner.Cleaner
	titlePrefixes []string
}

// NewTransformer creates a transformer using the given text cleaner and
// collaborative-title prefixes.
func NewTransformer(c *cleaner.Cleaner, titlePrefixes []string) *Transformer {
	return &Transformer{
		cleaner:       c,
		titlePrefixes: titlePrefixes,
	}
}

// Transform converts one raw row into an Award. Rows must already have
// passed validation; parse failures here are reported, not skipped.
func (t *Transformer) Transform(raw *models.RawAward) (*models.Award, error) {
	startDate, err := parseExportDate(raw.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}

	var endDate time.Time
	if raw.EndDate != "" {
		endDate, err = parseExportDate(raw.EndDate)
		if err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
	}

	amount, err := parseCurrency(raw.AwardedAmountToDate)
	if err != nil {
		return nil, fmt.Errorf("awarded amount: %w", err)
	}

	arra, err := parseCurrency(raw.ARRAAmount)
	if err != nil {
		return nil, fmt.Errorf("ARRA amount: %w", err)
	}

	title := cleaner.NormalizeSpace(cleaner.StripMarkup(raw.Title))
	abstract := t.cleaner.Clean(raw.Abstract)
	organization := cleaner.NormalizeSpace(raw.Organization)

	var organizations []string
	if organization != "" {
		organizations = []string{organization}
	}

	award := &models.Award{
		AwardID:               strings.TrimSpace(raw.AwardNumber),
		Title:                 title,
		Programs:              splitList(raw.Programs),
		StartDate:             startDate,
		EndDate:               endDate,
		StartYear:             startDate.Year(),
		Directorate:           cleaner.NormalizeSpace(raw.NSFDirectorate),
		Instrument:            cleaner.NormalizeSpace(raw.AwardInstrument),
		Organization:          organization,
		Organizations:         organizations,
		OrgCount:              1,
		PrincipalInvestigator: cleaner.NormalizeSpace(raw.PrincipalInvestigator),
		Amount:                amount,
		ARRAAmount:            arra,
		Abstract:              abstract,
		AbstractWords:         cleaner.WordCount(abstract),
		Collaborative:         t.isCollaborative(title),
	}

	return award, nil
}

// isCollaborative reports whether a cleaned title carries one of the
// collaborative prefixes, case-insensitively.
func (t *Transformer) isCollaborative(title string) bool {
	lower := strings.ToLower(title)
	for _, prefix := range t.titlePrefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return true
		}
	}

	return false
}

// parseExportDate parses a month/day/year date string.
func parseExportDate(s string) (time.Time, error) {
	return time.Parse(exportDateLayout, strings.TrimSpace(s))
}

// parseCurrency parses dollar strings like "$1,234,567.00" into a float.
// Empty strings map to nil; anything else non-numeric is an error.
func parseCurrency(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotCurrency, s)
	}

	return &v, nil
}

// splitList splits a comma-separated export field into trimmed entries.
func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
