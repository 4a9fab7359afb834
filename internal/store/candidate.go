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

const candidateStoreLabel = "candidate"

// CandidateStore owns the candidate-facing collections: open job postings
// and the candidate's own applications.
type CandidateStore struct {
	jobs         gateway.JobGateway
	applications gateway.ApplicationGateway
	logger       *zap.Logger

	jobList         collection[domain.Job]
	applicationList collection[domain.Application]
	loading         atomic.Bool
}

// NewCandidateStore creates an empty candidate store.
func NewCandidateStore(jobs gateway.JobGateway, applications gateway.ApplicationGateway, logger *zap.Logger) *CandidateStore {
	return &CandidateStore{jobs: jobs, applications: applications, logger: logger}
}

// StartBootstrap role-gates a fresh session and, for a candidate, raises
// the aggregate loading flag before any fetch is issued. Callers that
// background the fetches must call this first, synchronously: a dashboard
// read between login and the first fetch then reports loading instead of a
// ready-but-empty state. Non-candidate identities empty the store and
// return false.
func (s *CandidateStore) StartBootstrap(identity domain.Identity) bool {
	if identity.Role != domain.RoleCandidate {
		s.Reset()
		return false
	}
	s.loading.Store(true)
	return true
}

// Bootstrap performs the initial load for a freshly authenticated session.
// When the identity is not a candidate the store empties itself and issues
// zero backend calls. Otherwise both collections are fetched concurrently
// and the aggregate loading flag clears only after every fetch has settled,
// success or failure, so a dashboard never renders half-loaded.
func (s *CandidateStore) Bootstrap(ctx context.Context, identity domain.Identity) {
	if !s.StartBootstrap(identity) {
		return
	}
	defer s.loading.Store(false)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.RefreshJobs(ctx)
	}()
	go func() {
		defer wg.Done()
		s.RefreshApplications(ctx)
	}()
	wg.Wait()
}

// Reset empties all collections, e.g. on logout or a role-mismatched session.
func (s *CandidateStore) Reset() {
	s.jobList.clear()
	s.applicationList.clear()
	s.loading.Store(false)
}

// RefreshJobs reloads the open postings from the backend. A failed fetch
// keeps the previous postings.
func (s *CandidateStore) RefreshJobs(ctx context.Context) {
	refreshCollection(ctx, &s.jobList, candidateStoreLabel, "jobs", s.logger, s.jobs.ListOpen)
}

// RefreshApplications reloads the candidate's applications from the backend.
func (s *CandidateStore) RefreshApplications(ctx context.Context) {
	refreshCollection(ctx, &s.applicationList, candidateStoreLabel, "applications", s.logger, s.applications.ListMine)
}

// SubmitApplication submits a new application and, on success, re-fetches
// the applications so the server-assigned record appears in state. A failed
// submission (including a duplicate for the same job) propagates to the
// caller and leaves the collection untouched.
func (s *CandidateStore) SubmitApplication(ctx context.Context, req domain.CreateApplicationRequest) error {
	if _, err := s.applications.Create(ctx, req); err != nil {
		return fmt.Errorf("submit application: %w", err)
	}
	s.RefreshApplications(ctx)
	return nil
}

// Jobs returns a snapshot of the open postings.
func (s *CandidateStore) Jobs() []domain.Job {
	return s.jobList.snapshot()
}

// Applications returns a snapshot of the candidate's applications.
func (s *CandidateStore) Applications() []domain.Application {
	return s.applicationList.snapshot()
}

// Loading reports whether the initial fan-out is still in flight.
func (s *CandidateStore) Loading() bool {
	return s.loading.Load()
}

// JobsLoading reports whether a jobs refresh is in flight.
func (s *CandidateStore) JobsLoading() bool {
	return s.jobList.isLoading()
}

// ApplicationsLoading reports whether an applications refresh is in flight.
func (s *CandidateStore) ApplicationsLoading() bool {
	return s.applicationList.isLoading()
}
