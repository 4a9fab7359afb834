// Package gateway defines one typed interface per backend resource. Each
// implementation translates an operation into exactly one HTTP call against
// a fixed path template; modules are stateless, hold no cache and perform no
// retries. HTTP-layer failures propagate unmodified to the caller.
package gateway

import (
	"context"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

// JobGateway covers published job postings in both the candidate-facing and
// admin path scopes.
type JobGateway interface {
	// ListOpen returns the postings visible to candidates.
	ListOpen(ctx context.Context) ([]domain.Job, error)

	// Get returns one candidate-visible posting.
	Get(ctx context.Context, id int64) (domain.Job, error)

	// ListAll returns every posting, including unpublished ones (admin scope).
	ListAll(ctx context.Context) ([]domain.Job, error)

	// Create publishes an approved requirement as a job posting.
	Create(ctx context.Context, req domain.CreateJobRequest) (domain.Job, error)

	// Update mutates a posting.
	Update(ctx context.Context, id int64, req domain.UpdateJobRequest) (domain.Job, error)
}

// ApplicationGateway covers candidate submissions and HR review.
type ApplicationGateway interface {
	// ListMine returns the authenticated candidate's applications.
	ListMine(ctx context.Context) ([]domain.Application, error)

	// Create submits a new application. A duplicate per (candidate, job)
	// is rejected server-side and surfaces as domain.ErrDuplicateApplication.
	Create(ctx context.Context, req domain.CreateApplicationRequest) (domain.Application, error)

	// ListAll returns every application (admin scope).
	ListAll(ctx context.Context) ([]domain.Application, error)

	// Update advances an application through HR review.
	Update(ctx context.Context, id int64, req domain.UpdateApplicationRequest) (domain.Application, error)

	// WeeklyCounts returns the applications-per-day series for the last week.
	WeeklyCounts(ctx context.Context) ([]domain.DailyApplicationCount, error)
}

// InterviewGateway covers the interview round lifecycle.
type InterviewGateway interface {
	// ListAll returns every interview (admin scope).
	ListAll(ctx context.Context) ([]domain.Interview, error)

	// ListMine returns the authenticated interviewer's assigned interviews.
	ListMine(ctx context.Context) ([]domain.Interview, error)

	// Create schedules a new round.
	Create(ctx context.Context, req domain.CreateInterviewRequest) (domain.Interview, error)

	// Update mutates a scheduled round.
	Update(ctx context.Context, id int64, req domain.UpdateInterviewRequest) (domain.Interview, error)
}

// ApprovalGateway covers the requirement lifecycle: managers raise
// headcount requests, HR decides them.
type ApprovalGateway interface {
	// ListRequirements returns every job requirement regardless of status.
	ListRequirements(ctx context.Context) ([]domain.JobRequirement, error)

	// CreateRequirement submits a manager's headcount request. The backend
	// assigns the id, owner and Pending status.
	CreateRequirement(ctx context.Context, req domain.CreateRequirementRequest) (domain.JobRequirement, error)

	// ListPending returns the requirements still awaiting an HR decision.
	ListPending(ctx context.Context) ([]domain.JobRequirement, error)

	// SetStatus applies an HR decision. Only Approved and Rejected are
	// meaningful targets; Pending is the initial state, never a decision.
	SetStatus(ctx context.Context, id int64, status domain.RequirementStatus) (domain.JobRequirement, error)
}

// UserGateway covers user administration (admin scope).
type UserGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error)
	Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// FeedbackGateway covers interviewer evaluations. ByInterview is the
// authoritative "does feedback exist" check; the advisory mark store is not.
type FeedbackGateway interface {
	ByInterview(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error)
	Create(ctx context.Context, req domain.CreateFeedbackRequest) (domain.InterviewFeedback, error)
	Update(ctx context.Context, id int64, req domain.UpdateFeedbackRequest) (domain.InterviewFeedback, error)
}

// AuthGateway exchanges credentials for a session.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.Session, error)
}
