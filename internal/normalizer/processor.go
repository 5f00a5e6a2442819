// Package normalizer turns raw award rows into the cleaned, merged,
// inflation-adjusted table that gets persisted.
package normalizer

import (
	"fmt"

	"github.com/WHOIGit/nsf-oce-topics/internal/cleaner"
	"github.com/WHOIGit/nsf-oce-topics/internal/config"
	"github.com/WHOIGit/nsf-oce-topics/internal/cpi"
	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Result is the outcome of one processing pass.
type Result struct {
	Awards []*models.Award
	Counts models.StageCounts
}

// Processor runs the full normalization pass over raw award rows.
type Processor struct {
	validator        *Validator
	transformer      *Transformer
	merger           *Merger
	table            *cpi.Table
	minAbstractChars int
	minAmount        float64
}

// NewProcessor creates a processor wired from configuration and a loaded
// CPI table.
func NewProcessor(cfg *config.Config, table *cpi.Table) *Processor {
	c := cleaner.NewCleaner(cfg.Cleaning.BoilerplatePhrases)

	return &Processor{
		validator:        NewValidator(),
		transformer:      NewTransformer(c, cfg.Merge.TitlePrefixes),
		merger:           NewMerger(),
		table:            table,
		minAbstractChars: cfg.Cleaning.MinAbstractChars,
		minAmount:        cfg.Output.MinAmount,
	}
}

// Process runs the pipeline in order: deduplicate by award number, validate
// and transform rows, drop empty abstracts, merge collaborative groups,
// adjust for inflation, and null sub-threshold amounts. The first invalid
// row aborts the pass.
func (p *Processor) Process(raws []models.RawAward) (*Result, error) {
	result := &Result{}
	result.Counts.Read = len(raws)

	// 1. Deduplicate by award number, first occurrence wins.
	seen := make(map[string]bool, len(raws))

	var deduped []models.RawAward

	for _, raw := range raws {
		if seen[raw.AwardNumber] {
			result.Counts.Duplicates++

			continue
		}

		seen[raw.AwardNumber] = true
		deduped = append(deduped, raw)
	}

	// 2. Validate and transform, dropping rows whose cleaned abstract is
	// empty or too short.
	var awards []*models.Award

	for i := range deduped {
		raw := &deduped[i]

		if err := p.validator.Validate(raw); err != nil {
			return nil, fmt.Errorf("validation failed: award %s: %w", raw.AwardNumber, err)
		}

		award, err := p.transformer.Transform(raw)
		if err != nil {
			return nil, fmt.Errorf("transformation failed: award %s: %w", raw.AwardNumber, err)
		}

		if len(award.Abstract) < p.minAbstractChars {
			result.Counts.EmptyAbstract++

			continue
		}

		awards = append(awards, award)
	}

	// 3. Merge collaborative groups sharing an abstract.
	merged := p.merger.Merge(awards)
	result.Counts.Merged = len(awards) - len(merged)
	awards = merged

	// 4. Inflation-adjust into base-year dollars, then null amounts below
	// the threshold.
	for _, award := range awards {
		if award.Amount == nil {
			continue
		}

		adjusted, err := p.table.Adjust(*award.Amount, award.StartYear)
		if err != nil {
			return nil, fmt.Errorf("inflation adjustment failed: award %s: %w", award.AwardID, err)
		}

		award.AmountAdjusted = &adjusted

		if adjusted < p.minAmount {
			award.Amount = nil
			award.AmountAdjusted = nil
			result.Counts.NulledAmounts++
		}
	}

	result.Awards = awards
	result.Counts.Written = len(awards)

	return result, nil
}
