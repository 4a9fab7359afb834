// Package derive computes view projections over store snapshots: filters,
// orderings and dashboard aggregates. Every function is pure; inputs are
// never mutated and results are freshly allocated.
package derive

import (
	"strings"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

// JobFilter selects job postings. Zero-valued clauses match everything;
// non-zero clauses are AND-combined.
type JobFilter struct {
	// Query is matched case-insensitively as a substring of the title,
	// the description and each required skill.
	Query string

	// Statuses, when non-empty, keeps only postings in one of the given
	// publication states.
	Statuses []domain.JobStatus

	// MinExperience/MaxExperience bound the posting's required years,
	// inclusive. Nil means unbounded.
	MinExperience *int
	MaxExperience *int
}

// ApplicationFilter selects applications. Zero-valued clauses match
// everything; non-zero clauses are AND-combined.
type ApplicationFilter struct {
	// Query is matched case-insensitively as a substring of the applicant
	// name and email.
	Query string

	// Statuses, when non-empty, keeps only applications in one of the
	// given review states.
	Statuses []domain.ApplicationStatus

	// MinScore keeps applications whose keyword score is at least the
	// given value. Nil means unbounded.
	MinScore *int

	// JobID, when set, keeps only applications against that posting.
	JobID *int64
}

// FilterJobs returns the postings matching every clause of the filter, in
// input order.
func FilterJobs(jobs []domain.Job, f JobFilter) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	query := strings.ToLower(f.Query)
	for _, job := range jobs {
		if !jobMatchesQuery(job, query) {
			continue
		}
		if len(f.Statuses) > 0 && !containsJobStatus(f.Statuses, job.Status) {
			continue
		}
		if f.MinExperience != nil && job.YearsExperience < *f.MinExperience {
			continue
		}
		if f.MaxExperience != nil && job.YearsExperience > *f.MaxExperience {
			continue
		}
		out = append(out, job)
	}
	return out
}

// FilterApplications returns the applications matching every clause of the
// filter, in input order.
func FilterApplications(apps []domain.Application, f ApplicationFilter) []domain.Application {
	out := make([]domain.Application, 0, len(apps))
	query := strings.ToLower(f.Query)
	for _, app := range apps {
		if !applicationMatchesQuery(app, query) {
			continue
		}
		if len(f.Statuses) > 0 && !containsApplicationStatus(f.Statuses, app.Status) {
			continue
		}
		if f.MinScore != nil && app.KeywordScore < *f.MinScore {
			continue
		}
		if f.JobID != nil && app.JobID != *f.JobID {
			continue
		}
		out = append(out, app)
	}
	return out
}

func jobMatchesQuery(job domain.Job, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(job.JobTitle), query) ||
		strings.Contains(strings.ToLower(job.JobDescription), query) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), query) {
			return true
		}
	}
	return false
}

func applicationMatchesQuery(app domain.Application, query string) bool {
	if query == "" {
		return true
	}
	name := strings.ToLower(app.FirstName + " " + app.LastName)
	return strings.Contains(name, query) ||
		strings.Contains(strings.ToLower(app.Email), query)
}

func containsJobStatus(set []domain.JobStatus, s domain.JobStatus) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsApplicationStatus(set []domain.ApplicationStatus, s domain.ApplicationStatus) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}
