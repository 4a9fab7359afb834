package domain

import "time"

// ApplicationStatus is the review state of a candidate's application.
type ApplicationStatus string

const (
	ApplicationApplied    ApplicationStatus = "Applied"
	ApplicationScheduled  ApplicationStatus = "Interview Scheduled"
	ApplicationInProgress ApplicationStatus = "In Progress"
	ApplicationSelected   ApplicationStatus = "Selected"
	ApplicationRejected   ApplicationStatus = "Rejected"
)

// Valid reports whether the status is a known review state.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationApplied, ApplicationScheduled, ApplicationInProgress,
		ApplicationSelected, ApplicationRejected:
		return true
	}
	return false
}

// Terminal reports whether the application has reached a final decision.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationSelected || s == ApplicationRejected
}

// CanTransitionTo reports whether the status machine permits moving to next.
// Applied -> Interview Scheduled -> In Progress -> {Selected|Rejected}.
// Rejection is reachable from any non-terminal state.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == ApplicationRejected {
		return true
	}
	switch s {
	case ApplicationApplied:
		return next == ApplicationScheduled
	case ApplicationScheduled:
		return next == ApplicationInProgress
	case ApplicationInProgress:
		return next == ApplicationSelected
	}
	return false
}

// Application is a candidate's submission against a published job. The
// backend enforces at most one active application per (candidate, job);
// a duplicate submission surfaces as ErrDuplicateApplication.
type Application struct {
	ApplicationID int64             `json:"applicationId"`
	JobID         int64             `json:"jobId"`
	CandidateID   int64             `json:"candidateId"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	ResumePath    string            `json:"resumePath"`
	KeywordScore  int               `json:"keywordScore"`
	Status        ApplicationStatus `json:"status"`
	CurrentRound  int               `json:"currentRound"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// CreateApplicationRequest is a candidate's submission payload. The keyword
// score is computed externally from the resume; it is never client-supplied.
type CreateApplicationRequest struct {
	JobID      int64  `json:"jobId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumePath string `json:"resumePath"`
}

// UpdateApplicationRequest carries the mutable application fields used by
// HR review (status advancement and round bookkeeping).
type UpdateApplicationRequest struct {
	Status       *ApplicationStatus `json:"status,omitempty"`
	CurrentRound *int               `json:"currentRound,omitempty"`
}

// DailyApplicationCount is one bucket of the applications-per-day series
// shown on the HR dashboard.
type DailyApplicationCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
