package derive

import (
	"sort"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

// SortKey names an ordering over a collection. Unknown keys leave the input
// order intact.
type SortKey string

const (
	SortCreatedAsc  SortKey = "created_asc"
	SortCreatedDesc SortKey = "created_desc"
	SortStatus      SortKey = "status"
	SortScoreDesc   SortKey = "score_desc"
	SortTitle       SortKey = "title"
)

// ParseSortKey decodes a query-parameter sort key. Unrecognized values fall
// back to created-at descending, the default every listing view uses.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortCreatedAsc, SortCreatedDesc, SortStatus, SortScoreDesc, SortTitle:
		return SortKey(s)
	}
	return SortCreatedDesc
}

// SortJobs returns the postings reordered by key. Ties keep their input
// order, so applying the same key twice yields an identical slice.
func SortJobs(jobs []domain.Job, key SortKey) []domain.Job {
	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	switch key {
	case SortCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortCreatedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		})
	case SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].JobTitle < out[j].JobTitle
		})
	}
	return out
}

// SortApplications returns the applications reordered by key. Ties keep
// their input order.
func SortApplications(apps []domain.Application, key SortKey) []domain.Application {
	out := make([]domain.Application, len(apps))
	copy(out, apps)
	switch key {
	case SortCreatedAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortCreatedDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].CreatedAt.Before(out[i].CreatedAt)
		})
	case SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	case SortScoreDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].KeywordScore > out[j].KeywordScore
		})
	}
	return out
}
