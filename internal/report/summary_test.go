package report

import (
	"strings"
	"testing"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

func amount(v float64) *float64 {
	return &v
}

func TestSummarize(t *testing.T) {
	awards := []*models.Award{
		{AwardID: "1600001", StartYear: 2016, Amount: amount(100000), AmountAdjusted: amount(104625)},
		{AwardID: "1800001", StartYear: 2018, Amount: amount(200000), AmountAdjusted: amount(200000), Collaborative: true},
		{AwardID: "1900001", StartYear: 2019},
	}

	counts := models.StageCounts{Read: 5, Duplicates: 1, EmptyAbstract: 1, Written: 3}

	s := Summarize(awards, counts, 2018)

	if s.Collaborative != 1 {
		t.Errorf("Collaborative = %d, want 1", s.Collaborative)
	}

	if s.TotalNominal != 300000 {
		t.Errorf("TotalNominal = %v, want 300000", s.TotalNominal)
	}

	if s.TotalAdjusted != 304625 {
		t.Errorf("TotalAdjusted = %v, want 304625", s.TotalAdjusted)
	}

	if s.FirstYear != 2016 || s.LastYear != 2019 {
		t.Errorf("year span = %d-%d, want 2016-2019", s.FirstYear, s.LastYear)
	}
}

func TestSummary_Render(t *testing.T) {
	counts := models.StageCounts{Read: 10, Duplicates: 2, Written: 8}

	s := Summarize(nil, counts, 2018)
	out := s.Render()

	if !strings.Contains(out, "| read") {
		t.Errorf("missing read row:\n%s", out)
	}

	if !strings.Contains(out, "| 10") {
		t.Errorf("missing read count:\n%s", out)
	}

	if !strings.Contains(out, "total adjusted (2018 USD)") {
		t.Errorf("missing adjusted total:\n%s", out)
	}

	// Header separator present and all rows share one width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 8 {
		t.Fatalf("unexpectedly short render:\n%s", out)
	}

	if !strings.Contains(lines[1], "---") {
		t.Errorf("second line should be a separator, got %q", lines[1])
	}

	width := len(lines[0])
	for i := 1; i < 8; i++ {
		if len(lines[i]) != width {
			t.Errorf("line %d width %d, want %d:\n%s", i, len(lines[i]), width, out)
		}
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := renderTable([][]string{
		{"a", "bb"},
		{"ccc", "d"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0] != "| a   | bb |" {
		t.Errorf("header = %q", lines[0])
	}

	if lines[2] != "| ccc | d  |" {
		t.Errorf("row = %q", lines[2])
	}
}
