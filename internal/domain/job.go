package domain

import "time"

// JobStatus is the publication state of a candidate-facing job posting.
type JobStatus string

const (
	JobActive   JobStatus = "Active"
	JobInactive JobStatus = "Inactive"
	JobClosed   JobStatus = "Closed"
)

// Valid reports whether the status is a known publication state.
func (s JobStatus) Valid() bool {
	return s == JobActive || s == JobInactive || s == JobClosed
}

// Job is the published, candidate-facing projection of an approved
// requirement. JobID and RequirementID are distinct id spaces;
// SourceRequirementID is the only link between them.
type Job struct {
	JobID               int64     `json:"jobId"`
	SourceRequirementID int64     `json:"sourceRequirementId"`
	JobTitle            string    `json:"jobTitle"`
	JobDescription      string    `json:"jobDescription"`
	YearsExperience     int       `json:"yearsExperience"`
	RequiredSkills      []string  `json:"requiredSkills"`
	NumberOfOpenings    int       `json:"numberOfOpenings"`
	NumberOfRounds      int       `json:"numberOfRounds"`
	Status              JobStatus `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CreateJobRequest publishes an approved requirement as a job posting.
type CreateJobRequest struct {
	RequirementID    int64    `json:"requirementId"`
	JobTitle         string   `json:"jobTitle"`
	JobDescription   string   `json:"jobDescription"`
	YearsExperience  int      `json:"yearsExperience"`
	RequiredSkills   []string `json:"requiredSkills"`
	NumberOfOpenings int      `json:"numberOfOpenings"`
	NumberOfRounds   int      `json:"numberOfRounds"`
}

// UpdateJobRequest carries the mutable job posting fields.
type UpdateJobRequest struct {
	JobTitle         *string    `json:"jobTitle,omitempty"`
	JobDescription   *string    `json:"jobDescription,omitempty"`
	NumberOfOpenings *int       `json:"numberOfOpenings,omitempty"`
	Status           *JobStatus `json:"status,omitempty"`
}
