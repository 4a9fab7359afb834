package derive

import (
	"sort"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

// CountApplicationsByStatus buckets the applications by review state.
// Every valid state appears in the result, zero-valued when empty, so chart
// axes stay stable across refreshes.
func CountApplicationsByStatus(apps []domain.Application) map[domain.ApplicationStatus]int {
	out := map[domain.ApplicationStatus]int{
		domain.ApplicationApplied:    0,
		domain.ApplicationScheduled:  0,
		domain.ApplicationInProgress: 0,
		domain.ApplicationSelected:   0,
		domain.ApplicationRejected:   0,
	}
	for _, app := range apps {
		out[app.Status]++
	}
	return out
}

// AverageKeywordScore computes the mean resume keyword score. An empty
// collection averages to zero rather than NaN.
func AverageKeywordScore(apps []domain.Application) float64 {
	if len(apps) == 0 {
		return 0
	}
	var sum int
	for _, app := range apps {
		sum += app.KeywordScore
	}
	return float64(sum) / float64(len(apps))
}

// CountInterviewsByStatus buckets the interviews by round state.
func CountInterviewsByStatus(interviews []domain.Interview) map[domain.InterviewStatus]int {
	out := map[domain.InterviewStatus]int{
		domain.InterviewScheduled:  0,
		domain.InterviewInProgress: 0,
		domain.InterviewCompleted:  0,
		domain.InterviewCancelled:  0,
	}
	for _, iv := range interviews {
		out[iv.Status]++
	}
	return out
}

// CountRequirementsByStatus buckets requirements by decision state.
func CountRequirementsByStatus(reqs []domain.JobRequirement) map[domain.RequirementStatus]int {
	out := map[domain.RequirementStatus]int{
		domain.RequirementPending:  0,
		domain.RequirementApproved: 0,
		domain.RequirementRejected: 0,
	}
	for _, req := range reqs {
		out[req.Status]++
	}
	return out
}

// Metrics computes the HR dashboard headline figures from the store
// snapshots. Pending review counts applications still awaiting a decision.
func Metrics(jobs []domain.Job, apps []domain.Application, interviews []domain.Interview) domain.DashboardMetrics {
	var m domain.DashboardMetrics
	for _, job := range jobs {
		if job.Status == domain.JobActive {
			m.ActiveJobs++
		}
	}
	m.TotalApplications = len(apps)
	for _, app := range apps {
		if !app.Status.Terminal() {
			m.PendingReview++
		}
	}
	for _, iv := range interviews {
		if iv.Status == domain.InterviewScheduled {
			m.ScheduledInterviews++
		}
	}
	return m
}

// GroupApplicationsByDay buckets the applications by submission date
// (YYYY-MM-DD, the application's own timezone-less calendar day) and
// returns the buckets in ascending date order.
func GroupApplicationsByDay(apps []domain.Application) []domain.DailyApplicationCount {
	byDay := make(map[string]int)
	for _, app := range apps {
		byDay[app.CreatedAt.Format("2006-01-02")]++
	}
	out := make([]domain.DailyApplicationCount, 0, len(byDay))
	for date, count := range byDay {
		out = append(out, domain.DailyApplicationCount{Date: date, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
