package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
)

const hrStoreLabel = "hr"

// HRStore owns the HR-facing collections: job postings, all applications,
// all interviews, the pending approval queue, the full requirement list and
// the user roster.
type HRStore struct {
	jobs         gateway.JobGateway
	applications gateway.ApplicationGateway
	interviews   gateway.InterviewGateway
	approvals    gateway.ApprovalGateway
	users        gateway.UserGateway
	logger       *zap.Logger

	jobList         collection[domain.Job]
	applicationList collection[domain.Application]
	interviewList   collection[domain.Interview]
	pendingList     collection[domain.JobRequirement]
	requirementList collection[domain.JobRequirement]
	userList        collection[domain.User]
	loading         atomic.Bool
}

// NewHRStore creates an empty HR store.
func NewHRStore(
	jobs gateway.JobGateway,
	applications gateway.ApplicationGateway,
	interviews gateway.InterviewGateway,
	approvals gateway.ApprovalGateway,
	users gateway.UserGateway,
	logger *zap.Logger,
) *HRStore {
	return &HRStore{
		jobs:         jobs,
		applications: applications,
		interviews:   interviews,
		approvals:    approvals,
		users:        users,
		logger:       logger,
	}
}

// StartBootstrap role-gates a fresh session and, for HR, raises the
// aggregate loading flag before any fetch is issued, so callers that
// background the fetches never expose a ready-but-empty dashboard between
// login and the first fetch. Non-HR identities empty the store and return
// false.
func (s *HRStore) StartBootstrap(identity domain.Identity) bool {
	if identity.Role != domain.RoleHR {
		s.Reset()
		return false
	}
	s.loading.Store(true)
	return true
}

// Bootstrap performs the initial load for a freshly authenticated session.
// Non-HR identities get an emptied store and zero backend calls. For HR all
// six collections load concurrently; a failed sub-resource degrades to an
// empty list without aborting its siblings, and the aggregate loading flag
// clears only once every fetch has settled.
func (s *HRStore) Bootstrap(ctx context.Context, identity domain.Identity) {
	if !s.StartBootstrap(identity) {
		return
	}
	defer s.loading.Store(false)

	refreshes := []func(context.Context){
		s.RefreshJobs,
		s.RefreshApplications,
		s.RefreshInterviews,
		s.RefreshPendingApprovals,
		s.RefreshRequirements,
		s.RefreshUsers,
	}
	var wg sync.WaitGroup
	wg.Add(len(refreshes))
	for _, refresh := range refreshes {
		go func(refresh func(context.Context)) {
			defer wg.Done()
			refresh(ctx)
		}(refresh)
	}
	wg.Wait()
}

// Reset empties all collections.
func (s *HRStore) Reset() {
	s.jobList.clear()
	s.applicationList.clear()
	s.interviewList.clear()
	s.pendingList.clear()
	s.requirementList.clear()
	s.userList.clear()
	s.loading.Store(false)
}

// RefreshJobs reloads every posting, published or not.
func (s *HRStore) RefreshJobs(ctx context.Context) {
	refreshCollection(ctx, &s.jobList, hrStoreLabel, "jobs", s.logger, s.jobs.ListAll)
}

// RefreshApplications reloads every application.
func (s *HRStore) RefreshApplications(ctx context.Context) {
	refreshCollection(ctx, &s.applicationList, hrStoreLabel, "applications", s.logger, s.applications.ListAll)
}

// RefreshInterviews reloads every interview.
func (s *HRStore) RefreshInterviews(ctx context.Context) {
	refreshCollection(ctx, &s.interviewList, hrStoreLabel, "interviews", s.logger, s.interviews.ListAll)
}

// RefreshPendingApprovals reloads the undecided requirement queue.
func (s *HRStore) RefreshPendingApprovals(ctx context.Context) {
	refreshCollection(ctx, &s.pendingList, hrStoreLabel, "pending_approvals", s.logger, s.approvals.ListPending)
}

// RefreshRequirements reloads the full requirement list.
func (s *HRStore) RefreshRequirements(ctx context.Context) {
	refreshCollection(ctx, &s.requirementList, hrStoreLabel, "requirements", s.logger, s.approvals.ListRequirements)
}

// RefreshUsers reloads the user roster.
func (s *HRStore) RefreshUsers(ctx context.Context) {
	refreshCollection(ctx, &s.userList, hrStoreLabel, "users", s.logger, s.users.List)
}

// PublishJob publishes an approved requirement as a candidate-facing
// posting, then re-fetches the postings.
func (s *HRStore) PublishJob(ctx context.Context, req domain.CreateJobRequest) error {
	if _, err := s.jobs.Create(ctx, req); err != nil {
		return fmt.Errorf("publish job: %w", err)
	}
	s.RefreshJobs(ctx)
	return nil
}

// UpdateJob mutates a posting, then re-fetches the postings.
func (s *HRStore) UpdateJob(ctx context.Context, id int64, req domain.UpdateJobRequest) error {
	if _, err := s.jobs.Update(ctx, id, req); err != nil {
		return fmt.Errorf("update job %d: %w", id, err)
	}
	s.RefreshJobs(ctx)
	return nil
}

// UpdateApplication advances an application through review, then re-fetches
// the applications collection.
func (s *HRStore) UpdateApplication(ctx context.Context, id int64, req domain.UpdateApplicationRequest) error {
	if _, err := s.applications.Update(ctx, id, req); err != nil {
		return fmt.Errorf("update application %d: %w", id, err)
	}
	s.RefreshApplications(ctx)
	return nil
}

// ScheduleInterview creates a new round, then re-fetches the interviews.
func (s *HRStore) ScheduleInterview(ctx context.Context, req domain.CreateInterviewRequest) error {
	if _, err := s.interviews.Create(ctx, req); err != nil {
		return fmt.Errorf("schedule interview: %w", err)
	}
	s.RefreshInterviews(ctx)
	return nil
}

// UpdateInterview mutates a round, then re-fetches the interviews.
func (s *HRStore) UpdateInterview(ctx context.Context, id int64, req domain.UpdateInterviewRequest) error {
	if _, err := s.interviews.Update(ctx, id, req); err != nil {
		return fmt.Errorf("update interview %d: %w", id, err)
	}
	s.RefreshInterviews(ctx)
	return nil
}

// ApproveRequirement applies an HR approval to a pending requirement.
func (s *HRStore) ApproveRequirement(ctx context.Context, id int64) error {
	return s.decideRequirement(ctx, id, domain.RequirementApproved)
}

// RejectRequirement applies an HR rejection to a pending requirement.
func (s *HRStore) RejectRequirement(ctx context.Context, id int64) error {
	return s.decideRequirement(ctx, id, domain.RequirementRejected)
}

// decideRequirement commits the decision, then refreshes the pending queue
// and the full requirement list together: one decision changes membership of
// both collections. Both refreshes settle before the action returns.
func (s *HRStore) decideRequirement(ctx context.Context, id int64, status domain.RequirementStatus) error {
	if _, err := s.approvals.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set requirement %d status %s: %w", id, status, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.RefreshPendingApprovals(ctx)
	}()
	go func() {
		defer wg.Done()
		s.RefreshRequirements(ctx)
	}()
	wg.Wait()
	return nil
}

// CreateUser adds a platform user, then re-fetches the roster.
func (s *HRStore) CreateUser(ctx context.Context, req domain.CreateUserRequest) error {
	if _, err := s.users.Create(ctx, req); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	s.RefreshUsers(ctx)
	return nil
}

// UpdateUser mutates a platform user, then re-fetches the roster.
func (s *HRStore) UpdateUser(ctx context.Context, id int64, req domain.UpdateUserRequest) error {
	if _, err := s.users.Update(ctx, id, req); err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}
	s.RefreshUsers(ctx)
	return nil
}

// DeactivateUser retires an account without deleting it.
func (s *HRStore) DeactivateUser(ctx context.Context, id int64) error {
	inactive := false
	return s.UpdateUser(ctx, id, domain.UpdateUserRequest{IsActive: &inactive})
}

// DeleteUser removes an account, then re-fetches the roster.
func (s *HRStore) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.RefreshUsers(ctx)
	return nil
}

// WeeklyApplications fetches the applications-per-day series for the HR
// dashboard chart. The series is not held in store state; it is recomputed
// by the backend on every request.
func (s *HRStore) WeeklyApplications(ctx context.Context) ([]domain.DailyApplicationCount, error) {
	counts, err := s.applications.WeeklyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("weekly applications: %w", err)
	}
	return counts, nil
}

// Jobs returns a snapshot of every posting.
func (s *HRStore) Jobs() []domain.Job {
	return s.jobList.snapshot()
}

// Applications returns a snapshot of every application.
func (s *HRStore) Applications() []domain.Application {
	return s.applicationList.snapshot()
}

// Interviews returns a snapshot of every interview.
func (s *HRStore) Interviews() []domain.Interview {
	return s.interviewList.snapshot()
}

// PendingApprovals returns a snapshot of the undecided requirement queue.
func (s *HRStore) PendingApprovals() []domain.JobRequirement {
	return s.pendingList.snapshot()
}

// Requirements returns a snapshot of the full requirement list.
func (s *HRStore) Requirements() []domain.JobRequirement {
	return s.requirementList.snapshot()
}

// Users returns a snapshot of the user roster.
func (s *HRStore) Users() []domain.User {
	return s.userList.snapshot()
}

// Loading reports whether the initial fan-out is still in flight.
func (s *HRStore) Loading() bool {
	return s.loading.Load()
}

// JobsLoading reports whether a postings refresh is in flight.
func (s *HRStore) JobsLoading() bool {
	return s.jobList.isLoading()
}

// ApplicationsLoading reports whether an applications refresh is in flight.
func (s *HRStore) ApplicationsLoading() bool {
	return s.applicationList.isLoading()
}

// InterviewsLoading reports whether an interviews refresh is in flight.
func (s *HRStore) InterviewsLoading() bool {
	return s.interviewList.isLoading()
}

// ApprovalsLoading reports whether a pending-approvals refresh is in flight.
func (s *HRStore) ApprovalsLoading() bool {
	return s.pendingList.isLoading()
}

// RequirementsLoading reports whether a requirements refresh is in flight.
func (s *HRStore) RequirementsLoading() bool {
	return s.requirementList.isLoading()
}

// UsersLoading reports whether a user-roster refresh is in flight.
func (s *HRStore) UsersLoading() bool {
	return s.userList.isLoading()
}
