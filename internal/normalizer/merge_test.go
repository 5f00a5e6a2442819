package normalizer

import (
	"testing"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

func amount(v float64) *float64 {
	return &v
}

func collabAward(id, org, abstract string, amt *float64) *models.Award {
	return &models.Award{
		AwardID:       id,
		Title:         "Collaborative Research: Shared Project",
		Organization:  org,
		Organizations: []string{org},
		OrgCount:      1,
		Abstract:      abstract,
		Amount:        amt,
		Collaborative: true,
	}
}

func TestMerger_Merge_CollapsesGroup(t *testing.T) {
	m := NewMerger()

	awards := []*models.Award{
		collabAward("1800003", "WHOI", "shared abstract", amount(300000)),
		collabAward("1800001", "Scripps", "shared abstract", amount(200000)),
		collabAward("1800002", "URI", "shared abstract", amount(100000)),
	}

	merged := m.Merge(awards)

	if len(merged) != 1 {
		t.Fatalf("Merge returned %d rows, want 1", len(merged))
	}

	got := merged[0]

	if got.AwardID != "1800001" {
		t.Errorf("survivor = %s, want lowest award number 1800001", got.AwardID)
	}

	if got.Amount == nil || *got.Amount != 600000 {
		t.Errorf("Amount = %v, want sum 600000", got.Amount)
	}

	if got.OrgCount != 3 {
		t.Errorf("OrgCount = %d, want 3", got.OrgCount)
	}

	if len(got.Organizations) != 3 {
		t.Fatalf("Organizations = %v, want 3 entries", got.Organizations)
	}

	// Group encounter order, not survivor order.
	if got.Organizations[0] != "WHOI" {
		t.Errorf("Organizations[0] = %q, want WHOI", got.Organizations[0])
	}
}

func TestMerger_Merge_LeavesSingletons(t *testing.T) {
	m := NewMerger()

	awards := []*models.Award{
		collabAward("1800001", "WHOI", "abstract one", amount(100000)),
		collabAward("1800002", "Scripps", "abstract two", amount(200000)),
	}

	merged := m.Merge(awards)

	if len(merged) != 2 {
		t.Fatalf("Merge returned %d rows, want 2", len(merged))
	}

	if merged[0].Amount == nil || *merged[0].Amount != 100000 {
		t.Errorf("singleton amount changed: %v", merged[0].Amount)
	}
}

func TestMerger_Merge_IgnoresNonCollaborative(t *testing.T) {
	m := NewMerger()

	a := collabAward("1800001", "WHOI", "shared abstract", amount(100000))
	b := collabAward("1800002", "Scripps", "shared abstract", amount(200000))

	// Same abstract but not flagged collaborative: must not merge.
	c := collabAward("1800003", "URI", "shared abstract", amount(50000))
	c.Collaborative = false
	c.Title = "Shared Project"

	merged := m.Merge([]*models.Award{a, b, c})

	if len(merged) != 2 {
		t.Fatalf("Merge returned %d rows, want 2", len(merged))
	}

	var foundNonCollab bool

	for _, award := range merged {
		if award.AwardID == "1800003" {
			foundNonCollab = true

			if award.Amount == nil || *award.Amount != 50000 {
				t.Errorf("non-collaborative amount changed: %v", award.Amount)
			}
		}
	}

	if !foundNonCollab {
		t.Error("non-collaborative row was merged away")
	}
}

func TestMerger_Merge_NilAmounts(t *testing.T) {
	m := NewMerger()

	awards := []*models.Award{
		collabAward("1800001", "WHOI", "shared abstract", nil),
		collabAward("1800002", "Scripps", "shared abstract", amount(200000)),
	}

	merged := m.Merge(awards)

	if len(merged) != 1 {
		t.Fatalf("Merge returned %d rows, want 1", len(merged))
	}

	if merged[0].Amount == nil || *merged[0].Amount != 200000 {
		t.Errorf("Amount = %v, want 200000", merged[0].Amount)
	}
}

func TestMerger_Merge_PreservesOrder(t *testing.T) {
	m := NewMerger()

	plain := &models.Award{AwardID: "1700001", Title: "Standalone", Abstract: "other", OrgCount: 1}

	awards := []*models.Award{
		collabAward("1800002", "WHOI", "shared abstract", amount(100000)),
		plain,
		collabAward("1800001", "Scripps", "shared abstract", amount(100000)),
	}

	merged := m.Merge(awards)

	if len(merged) != 2 {
		t.Fatalf("Merge returned %d rows, want 2", len(merged))
	}

	// Merged group sits where its first member was.
	if !merged[0].Collaborative {
		t.Error("merged group should occupy the first member's position")
	}

	if merged[1].AwardID != "1700001" {
		t.Errorf("merged[1] = %s, want 1700001", merged[1].AwardID)
	}
}
