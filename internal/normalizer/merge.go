package normalizer

import (
	"strconv"

	"github.com/WHOIGit/nsf-oce-topics/internal/models"
)

// Merger collapses collaborative award groups. NSF registers one award per
// participating organization for a collaborative project; the records share
// an abstract, which serves as the grouping key.
type Merger struct{}

// NewMerger creates a new merger instance.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge collapses collaborative awards sharing an identical cleaned
// abstract into a single record. The surviving record is the one with the
// lowest award number; its amount is the sum over the group and it lists
// every participating organization. Non-collaborative awards and singleton
// groups pass through unchanged. Input order is preserved, with each merged
// group at the position of its first member.
func (m *Merger) Merge(awards []*models.Award) []*models.Award {
	groups := make(map[string][]*models.Award)

	for _, a := range awards {
		if a.Collaborative {
			groups[a.Abstract] = append(groups[a.Abstract], a)
		}
	}

	mergedByAbstract := make(map[string]*models.Award, len(groups))
	for abstract, group := range groups {
		if len(group) > 1 {
			mergedByAbstract[abstract] = mergeGroup(group)
		}
	}

	var out []*models.Award

	emitted := make(map[string]bool)

	for _, a := range awards {
		if !a.Collaborative {
			out = append(out, a)

			continue
		}

		merged, ok := mergedByAbstract[a.Abstract]
		if !ok {
			out = append(out, a)

			continue
		}

		if !emitted[a.Abstract] {
			emitted[a.Abstract] = true
			out = append(out, merged)
		}
	}

	return out
}

// mergeGroup combines one collaborative group into its surviving record.
func mergeGroup(group []*models.Award) *models.Award {
	survivor := group[0]
	for _, a := range group[1:] {
		if lessAwardID(a.AwardID, survivor.AwardID) {
			survivor = a
		}
	}

	merged := *survivor
	merged.Organizations = nil
	merged.OrgCount = len(group)

	var total float64

	haveAmount := false
	seenOrg := make(map[string]bool)

	for _, a := range group {
		if a.Amount != nil {
			total += *a.Amount
			haveAmount = true
		}

		if a.Organization != "" && !seenOrg[a.Organization] {
			seenOrg[a.Organization] = true
			merged.Organizations = append(merged.Organizations, a.Organization)
		}
	}

	if haveAmount {
		merged.Amount = &total
	} else {
		merged.Amount = nil
	}

	return &merged
}

// lessAwardID orders award numbers numerically when both parse, falling
// back to string order.
func lessAwardID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	if errA == nil && errB == nil {
		return na < nb
	}

	return a < b
}
