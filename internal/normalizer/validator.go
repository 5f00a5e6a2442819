package normalizer

import (
	"errors"
	"fmt"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Validation errors.
var (
	ErrMissingAwardNumber = errors.New("missing award number")
	ErrMissingStartDate   = errors.New("missing start date")
	ErrBadStartDate       = errors.New("unparseable start date")
	ErrBadEndDate         = errors.New("unparseable end date")
	ErrBadAmount          = errors.New("unparseable award amount")
	ErrBadARRAAmount      = errors.New("unparseable ARRA amount")
)

// Validator checks raw award rows before transformation.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks one raw row. The first failing check is returned; a
// failing row aborts the whole run.
func (v *Validator) Validate(raw *models.RawAward) error {
	if raw.AwardNumber == "" {
		return ErrMissingAwardNumber
	}

	if raw.StartDate == "" {
		return ErrMissingStartDate
	}

	if _, err := parseExportDate(raw.StartDate); err != nil {
		return fmt.Errorf("%w: %q", ErrBadStartDate, raw.StartDate)
	}

	if raw.EndDate != "" {
		if _, err := parseExportDate(raw.EndDate); err != nil {
			return fmt.Errorf("%w: %q", ErrBadEndDate, raw.EndDate)
		}
	}

	if _, err := parseCurrency(raw.AwardedAmountToDate); err != nil {
		return fmt.Errorf("%w: %q", ErrBadAmount, raw.AwardedAmountToDate)
	}

	if _, err := parseCurrency(raw.ARRAAmount); err != nil {
		return fmt.Errorf("%w: %q", ErrBadARRAAmount, raw.ARRAAmount)
	}

	return nil
}
