// Package mock provides in-memory gateway fakes for testing. Each mock
// records call counts and exposes per-method hook functions for injecting
// canned data or errors; with no hook set, reads return empty collections
// and writes echo their input.
package mock

import (
	"context"
	"sync"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
)

var _ gateway.JobGateway = (*JobGateway)(nil)

// JobGateway is a hook-based fake of the job gateway.
type JobGateway struct {
	mu sync.Mutex

	ListOpenFunc func(ctx context.Context) ([]domain.Job, error)
	ListAllFunc  func(ctx context.Context) ([]domain.Job, error)
	GetFunc      func(ctx context.Context, id int64) (domain.Job, error)
	CreateFunc   func(ctx context.Context, req domain.CreateJobRequest) (domain.Job, error)
	UpdateFunc   func(ctx context.Context, id int64, req domain.UpdateJobRequest) (domain.Job, error)

	ListOpenCalls int
	ListAllCalls  int
}

func NewJobGateway() *JobGateway { return &JobGateway{} }

func (m *JobGateway) ListOpen(ctx context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	m.ListOpenCalls++
	m.mu.Unlock()
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	return []domain.Job{}, nil
}

func (m *JobGateway) ListAll(ctx context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	m.ListAllCalls++
	m.mu.Unlock()
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []domain.Job{}, nil
}

func (m *JobGateway) Get(ctx context.Context, id int64) (domain.Job, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return domain.Job{JobID: id}, nil
}

func (m *JobGateway) Create(ctx context.Context, req domain.CreateJobRequest) (domain.Job, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return domain.Job{JobTitle: req.JobTitle, SourceRequirementID: req.RequirementID}, nil
}

func (m *JobGateway) Update(ctx context.Context, id int64, req domain.UpdateJobRequest) (domain.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return domain.Job{JobID: id}, nil
}

var _ gateway.ApplicationGateway = (*ApplicationGateway)(nil)

// ApplicationGateway is a hook-based fake of the application gateway.
type ApplicationGateway struct {
	mu sync.Mutex

	ListMineFunc     func(ctx context.Context) ([]domain.Application, error)
	ListAllFunc      func(ctx context.Context) ([]domain.Application, error)
	CreateFunc       func(ctx context.Context, req domain.CreateApplicationRequest) (domain.Application, error)
	UpdateFunc       func(ctx context.Context, id int64, req domain.UpdateApplicationRequest) (domain.Application, error)
	WeeklyCountsFunc func(ctx context.Context) ([]domain.DailyApplicationCount, error)

	ListMineCalls int
	ListAllCalls  int
	CreateCalls   int
	UpdateCalls   int
}

func NewApplicationGateway() *ApplicationGateway { return &ApplicationGateway{} }

func (m *ApplicationGateway) ListMine(ctx context.Context) ([]domain.Application, error) {
	m.mu.Lock()
	m.ListMineCalls++
	m.mu.Unlock()
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx)
	}
	return []domain.Application{}, nil
}

func (m *ApplicationGateway) ListAll(ctx context.Context) ([]domain.Application, error) {
	m.mu.Lock()
	m.ListAllCalls++
	m.mu.Unlock()
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []domain.Application{}, nil
}

func (m *ApplicationGateway) Create(ctx context.Context, req domain.CreateApplicationRequest) (domain.Application, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return domain.Application{JobID: req.JobID, Email: req.Email, Status: domain.ApplicationApplied}, nil
}

func (m *ApplicationGateway) Update(ctx context.Context, id int64, req domain.UpdateApplicationRequest) (domain.Application, error) {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return domain.Application{ApplicationID: id}, nil
}

func (m *ApplicationGateway) WeeklyCounts(ctx context.Context) ([]domain.DailyApplicationCount, error) {
	if m.WeeklyCountsFunc != nil {
		return m.WeeklyCountsFunc(ctx)
	}
	return []domain.DailyApplicationCount{}, nil
}

var _ gateway.InterviewGateway = (*InterviewGateway)(nil)

// InterviewGateway is a hook-based fake of the interview gateway.
type InterviewGateway struct {
	mu sync.Mutex

	ListAllFunc  func(ctx context.Context) ([]domain.Interview, error)
	ListMineFunc func(ctx context.Context) ([]domain.Interview, error)
	CreateFunc   func(ctx context.Context, req domain.CreateInterviewRequest) (domain.Interview, error)
	UpdateFunc   func(ctx context.Context, id int64, req domain.UpdateInterviewRequest) (domain.Interview, error)

	ListAllCalls  int
	ListMineCalls int
	CreateCalls   int
}

func NewInterviewGateway() *InterviewGateway { return &InterviewGateway{} }

func (m *InterviewGateway) ListAll(ctx context.Context) ([]domain.Interview, error) {
	m.mu.Lock()
	m.ListAllCalls++
	m.mu.Unlock()
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []domain.Interview{}, nil
}

func (m *InterviewGateway) ListMine(ctx context.Context) ([]domain.Interview, error) {
	m.mu.Lock()
	m.ListMineCalls++
	m.mu.Unlock()
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx)
	}
	return []domain.Interview{}, nil
}

func (m *InterviewGateway) Create(ctx context.Context, req domain.CreateInterviewRequest) (domain.Interview, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return domain.Interview{
		ApplicationID: req.ApplicationID,
		InterviewerID: req.InterviewerID,
		RoundNumber:   req.RoundNumber,
		Status:        domain.InterviewScheduled,
	}, nil
}

func (m *InterviewGateway) Update(ctx context.Context, id int64, req domain.UpdateInterviewRequest) (domain.Interview, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return domain.Interview{InterviewID: id}, nil
}

var _ gateway.ApprovalGateway = (*ApprovalGateway)(nil)

// ApprovalGateway is a hook-based fake of the approval gateway.
type ApprovalGateway struct {
	mu sync.Mutex

	ListRequirementsFunc  func(ctx context.Context) ([]domain.JobRequirement, error)
	CreateRequirementFunc func(ctx context.Context, req domain.CreateRequirementRequest) (domain.JobRequirement, error)
	ListPendingFunc       func(ctx context.Context) ([]domain.JobRequirement, error)
	SetStatusFunc         func(ctx context.Context, id int64, status domain.RequirementStatus) (domain.JobRequirement, error)

	ListRequirementsCalls  int
	CreateRequirementCalls int
	ListPendingCalls       int
	SetStatusCalls         int
}

func NewApprovalGateway() *ApprovalGateway { return &ApprovalGateway{} }

func (m *ApprovalGateway) ListRequirements(ctx context.Context) ([]domain.JobRequirement, error) {
	m.mu.Lock()
	m.ListRequirementsCalls++
	m.mu.Unlock()
	if m.ListRequirementsFunc != nil {
		return m.ListRequirementsFunc(ctx)
	}
	return []domain.JobRequirement{}, nil
}

func (m *ApprovalGateway) CreateRequirement(ctx context.Context, req domain.CreateRequirementRequest) (domain.JobRequirement, error) {
	m.mu.Lock()
	m.CreateRequirementCalls++
	m.mu.Unlock()
	if m.CreateRequirementFunc != nil {
		return m.CreateRequirementFunc(ctx, req)
	}
	return domain.JobRequirement{
		RequirementID:    1,
		JobTitle:         req.JobTitle,
		JobDescription:   req.JobDescription,
		YearsExperience:  req.YearsExperience,
		RequiredSkills:   req.RequiredSkills,
		NumberOfOpenings: req.NumberOfOpenings,
		NumberOfRounds:   req.NumberOfRounds,
		Status:           domain.RequirementPending,
	}, nil
}

func (m *ApprovalGateway) ListPending(ctx context.Context) ([]domain.JobRequirement, error) {
	m.mu.Lock()
	m.ListPendingCalls++
	m.mu.Unlock()
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx)
	}
	return []domain.JobRequirement{}, nil
}

func (m *ApprovalGateway) SetStatus(ctx context.Context, id int64, status domain.RequirementStatus) (domain.JobRequirement, error) {
	m.mu.Lock()
	m.SetStatusCalls++
	m.mu.Unlock()
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return domain.JobRequirement{RequirementID: id, Status: status}, nil
}

var _ gateway.UserGateway = (*UserGateway)(nil)

// UserGateway is a hook-based fake of the user gateway.
type UserGateway struct {
	mu sync.Mutex

	ListFunc   func(ctx context.Context) ([]domain.User, error)
	CreateFunc func(ctx context.Context, req domain.CreateUserRequest) (domain.User, error)
	UpdateFunc func(ctx context.Context, id int64, req domain.UpdateUserRequest) (domain.User, error)
	DeleteFunc func(ctx context.Context, id int64) error

	ListCalls   int
	CreateCalls int
	DeleteCalls int
}

func NewUserGateway() *UserGateway { return &UserGateway{} }

func (m *UserGateway) List(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *UserGateway) Create(ctx context.Context, req domain.CreateUserRequest) (domain.User, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return domain.User{Email: req.Email, Role: req.Role, IsActive: true}, nil
}

func (m *UserGateway) Update(ctx context.Context, id int64, req domain.UpdateUserRequest) (domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return domain.User{UserID: id}, nil
}

func (m *UserGateway) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ gateway.FeedbackGateway = (*FeedbackGateway)(nil)

// FeedbackGateway is a hook-based fake of the feedback gateway.
type FeedbackGateway struct {
	mu sync.Mutex

	ByInterviewFunc func(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error)
	CreateFunc      func(ctx context.Context, req domain.CreateFeedbackRequest) (domain.InterviewFeedback, error)
	UpdateFunc      func(ctx context.Context, id int64, req domain.UpdateFeedbackRequest) (domain.InterviewFeedback, error)

	CreateCalls int
}

func NewFeedbackGateway() *FeedbackGateway { return &FeedbackGateway{} }

func (m *FeedbackGateway) ByInterview(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error) {
	if m.ByInterviewFunc != nil {
		return m.ByInterviewFunc(ctx, interviewID)
	}
	return domain.InterviewFeedback{}, domain.ErrNotFound
}

func (m *FeedbackGateway) Create(ctx context.Context, req domain.CreateFeedbackRequest) (domain.InterviewFeedback, error) {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return domain.InterviewFeedback{
		InterviewID:    req.InterviewID,
		OverallRating:  req.OverallRating,
		Recommendation: req.Recommendation,
	}, nil
}

func (m *FeedbackGateway) Update(ctx context.Context, id int64, req domain.UpdateFeedbackRequest) (domain.InterviewFeedback, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return domain.InterviewFeedback{FeedbackID: id}, nil
}

var _ gateway.AuthGateway = (*AuthGateway)(nil)

// AuthGateway is a hook-based fake of the auth gateway.
type AuthGateway struct {
	mu sync.Mutex

	LoginFunc    func(ctx context.Context, email, password string) (domain.Session, error)
	RegisterFunc func(ctx context.Context, req domain.RegisterRequest) (domain.Session, error)

	LoginCalls int
}

func NewAuthGateway() *AuthGateway { return &AuthGateway{} }

func (m *AuthGateway) Login(ctx context.Context, email, password string) (domain.Session, error) {
	m.mu.Lock()
	m.LoginCalls++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return domain.Session{
		Token:    "test-token",
		Identity: domain.Identity{UserID: 1, Email: email, Role: domain.RoleCandidate},
	}, nil
}

func (m *AuthGateway) Register(ctx context.Context, req domain.RegisterRequest) (domain.Session, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return domain.Session{
		Token:    "test-token",
		Identity: domain.Identity{UserID: 1, Email: req.Email, Role: domain.RoleCandidate},
	}, nil
}
