package derive

import (
	"testing"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{JobID: 1, JobTitle: "Backend Engineer", JobDescription: "Go services", YearsExperience: 3, RequiredSkills: []string{"Go", "PostgreSQL"}, Status: domain.JobActive},
		{JobID: 2, JobTitle: "Frontend Engineer", JobDescription: "React dashboards", YearsExperience: 2, RequiredSkills: []string{"TypeScript"}, Status: domain.JobActive},
		{JobID: 3, JobTitle: "Data Analyst", JobDescription: "SQL reporting", YearsExperience: 5, RequiredSkills: []string{"SQL", "Python"}, Status: domain.JobClosed},
	}
}

func sampleApplications() []domain.Application {
	return []domain.Application{
		{ApplicationID: 1, JobID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", KeywordScore: 85, Status: domain.ApplicationApplied},
		{ApplicationID: 2, JobID: 1, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", KeywordScore: 92, Status: domain.ApplicationSelected},
		{ApplicationID: 3, JobID: 2, FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", KeywordScore: 60, Status: domain.ApplicationRejected},
	}
}

func TestFilterJobs_EmptyFilterMatchesAll(t *testing.T) {
	jobs := sampleJobs()
	got := FilterJobs(jobs, JobFilter{})
	if len(got) != len(jobs) {
		t.Fatalf("empty filter kept %d of %d", len(got), len(jobs))
	}
	for i := range got {
		if got[i].JobID != jobs[i].JobID {
			t.Error("filter must preserve input order")
			break
		}
	}
}

func TestFilterJobs_QueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	jobs := sampleJobs()
	cases := []struct {
		query string
		want  []int64
	}{
		{"engineer", []int64{1, 2}}, // title
		{"REACT", []int64{2}},       // description
		{"postgres", []int64{1}},    // skill
		{"haskell", nil},
	}
	for _, tc := range cases {
		got := FilterJobs(jobs, JobFilter{Query: tc.query})
		if len(got) != len(tc.want) {
			t.Errorf("query %q kept %d jobs, want %d", tc.query, len(got), len(tc.want))
			continue
		}
		for i, job := range got {
			if job.JobID != tc.want[i] {
				t.Errorf("query %q: got job %d at %d, want %d", tc.query, job.JobID, i, tc.want[i])
			}
		}
	}
}

func TestFilterJobs_ClausesAndCombine(t *testing.T) {
	minExp := 3
	got := FilterJobs(sampleJobs(), JobFilter{
		Statuses:      []domain.JobStatus{domain.JobActive},
		MinExperience: &minExp,
	})
	if len(got) != 1 || got[0].JobID != 1 {
		t.Fatalf("expected only job 1 to satisfy both clauses, got %+v", got)
	}
}

func TestFilterJobs_ExperienceRangeInclusive(t *testing.T) {
	lo, hi := 2, 3
	got := FilterJobs(sampleJobs(), JobFilter{MinExperience: &lo, MaxExperience: &hi})
	if len(got) != 2 {
		t.Fatalf("inclusive range [2,3] kept %d jobs, want 2", len(got))
	}
}

func TestFilterJobs_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	FilterJobs(jobs, JobFilter{Query: "engineer"})
	if jobs[0].JobID != 1 || jobs[2].JobID != 3 || len(jobs) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestFilterApplications_QueryMatchesNameAndEmail(t *testing.T) {
	apps := sampleApplications()
	if got := FilterApplications(apps, ApplicationFilter{Query: "ada love"}); len(got) != 1 || got[0].ApplicationID != 1 {
		t.Errorf("full-name query failed: %+v", got)
	}
	if got := FilterApplications(apps, ApplicationFilter{Query: "GRACE@"}); len(got) != 1 || got[0].ApplicationID != 2 {
		t.Errorf("email query failed: %+v", got)
	}
}

func TestFilterApplications_ScoreStatusAndJobClauses(t *testing.T) {
	apps := sampleApplications()
	minScore := 80
	jobID := int64(1)
	got := FilterApplications(apps, ApplicationFilter{
		Statuses: []domain.ApplicationStatus{domain.ApplicationApplied, domain.ApplicationSelected},
		MinScore: &minScore,
		JobID:    &jobID,
	})
	if len(got) != 2 {
		t.Fatalf("expected applications 1 and 2, got %+v", got)
	}

	minScore = 90
	got = FilterApplications(apps, ApplicationFilter{MinScore: &minScore})
	if len(got) != 1 || got[0].ApplicationID != 2 {
		t.Errorf("score >= 90 should keep only application 2, got %+v", got)
	}
}
