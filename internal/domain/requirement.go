package domain

import (
	"fmt"
	"time"
)

// RequirementStatus is the tri-state approval status of a job requirement.
// The backend encodes it as a bare numeric code.
type RequirementStatus int

const (
	RequirementPending RequirementStatus = iota
	RequirementApproved
	RequirementRejected
)

// Valid reports whether the status is one of the three known codes.
func (s RequirementStatus) Valid() bool {
	return s >= RequirementPending && s <= RequirementRejected
}

// Terminal reports whether the status admits no further transitions.
// Only Pending requirements may be approved or rejected.
func (s RequirementStatus) Terminal() bool {
	return s == RequirementApproved || s == RequirementRejected
}

// String returns the human-readable status label.
func (s RequirementStatus) String() string {
	switch s {
	case RequirementPending:
		return "Pending"
	case RequirementApproved:
		return "Approved"
	case RequirementRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("RequirementStatus(%d)", int(s))
	}
}

// RequirementStatusFromCode decodes the backend's numeric status code.
func RequirementStatusFromCode(code int) (RequirementStatus, error) {
	s := RequirementStatus(code)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: requirement status code %d", ErrUnknownStatus, code)
	}
	return s, nil
}

// JobRequirement is a manager's request for headcount. It is immutable once
// created except for its status (HR approval workflow) and timestamps.
// Its id space is distinct from Job's; an approved requirement is published
// as a Job carrying SourceRequirementID.
type JobRequirement struct {
	RequirementID    int64             `json:"requirementId"`
	ManagerID        int64             `json:"managerId"`
	JobTitle         string            `json:"jobTitle"`
	JobDescription   string            `json:"jobDescription"`
	YearsExperience  int               `json:"yearsExperience"`
	RequiredSkills   string            `json:"requiredSkills"`
	NumberOfOpenings int               `json:"numberOfOpenings"`
	NumberOfRounds   int               `json:"numberOfRounds"`
	Status           RequirementStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// CreateRequirementRequest is the payload for a manager's headcount request.
type CreateRequirementRequest struct {
	JobTitle         string `json:"jobTitle"`
	JobDescription   string `json:"jobDescription"`
	YearsExperience  int    `json:"yearsExperience"`
	RequiredSkills   string `json:"requiredSkills"`
	NumberOfOpenings int    `json:"numberOfOpenings"`
	NumberOfRounds   int    `json:"numberOfRounds"`
}
