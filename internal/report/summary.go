// Package report renders run-summary tables for the ETL.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Summary aggregates what one run produced.
type Summary struct {
	Counts        models.StageCounts
	Collaborative int
	TotalNominal  float64
	TotalAdjusted float64
	FirstYear     int
	LastYear      int
	BaseYear      int
}

// Summarize computes totals and year span over the final award set.
func Summarize(awards []*models.Award, counts models.StageCounts, baseYear int) *Summary {
	s := &Summary{Counts: counts, BaseYear: baseYear}

	for _, a := range awards {
		if a.Collaborative {
			s.Collaborative++
		}

		if a.Amount != nil {
			s.TotalNominal += *a.Amount
		}

		if a.AmountAdjusted != nil {
			s.TotalAdjusted += *a.AmountAdjusted
		}

		if a.StartYear == 0 {
			continue
		}

		if s.FirstYear == 0 || a.StartYear < s.FirstYear {
			s.FirstYear = a.StartYear
		}

		if a.StartYear > s.LastYear {
			s.LastYear = a.StartYear
		}
	}

	return s
}

// Render formats the summary as an aligned two-column table.
func (s *Summary) Render() string {
	rows := [][]string{
		{"Stage", "Rows"},
		{"read", fmt.Sprintf("%d", s.Counts.Read)},
		{"duplicate award numbers dropped", fmt.Sprintf("%d", s.Counts.Duplicates)},
		{"empty abstracts dropped", fmt.Sprintf("%d", s.Counts.EmptyAbstract)},
		{"collaborative rows merged away", fmt.Sprintf("%d", s.Counts.Merged)},
		{"sub-threshold amounts nulled", fmt.Sprintf("%d", s.Counts.NulledAmounts)},
		{"written", fmt.Sprintf("%d", s.Counts.Written)},
	}

	var b strings.Builder

	b.WriteString(renderTable(rows))
	b.WriteString("\n")
	fmt.Fprintf(&b, "collaborative awards: %d\n", s.Collaborative)
	fmt.Fprintf(&b, "total nominal: $%.2f\n", s.TotalNominal)
	fmt.Fprintf(&b, "total adjusted (%d USD): $%.2f\n", s.BaseYear, s.TotalAdjusted)

	if s.FirstYear != 0 {
		fmt.Fprintf(&b, "start years: %d-%d\n", s.FirstYear, s.LastYear)
	}

	return b.String()
}

// Duration formats an elapsed run time for log output.
func Duration(start time.Time) string {
	return time.Since(start).Round(time.Millisecond).String()
}

// renderTable builds a pipe-delimited table with columns padded to the
// widest cell's display width.
func renderTable(rows [][]string) string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var b strings.Builder

	for rIdx, row := range rows {
		b.WriteString("|")

		for j := 0; j < colCount; j++ {
			b.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			b.WriteString(content)

			if padding := colWidths[j] - runewidth.StringWidth(content); padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}

			b.WriteString(" |")
		}

		b.WriteString("\n")

		// Separator under the header row.
		if rIdx == 0 {
			b.WriteString("|")

			for j := 0; j < colCount; j++ {
				b.WriteString(" ")
				b.WriteString(strings.Repeat("-", colWidths[j]))
				b.WriteString(" |")
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}
