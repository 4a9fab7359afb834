package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
)

const managerStoreLabel = "manager"

// ManagerStore owns the headcount requests raised by the signed-in manager.
// Managers only see their own requirements; the decision itself belongs to
// the HR store.
type ManagerStore struct {
	approvals gateway.ApprovalGateway
	logger    *zap.Logger

	requirementList collection[domain.JobRequirement]
	loading         atomic.Bool
}

// NewManagerStore creates an empty manager store.
func NewManagerStore(approvals gateway.ApprovalGateway, logger *zap.Logger) *ManagerStore {
	return &ManagerStore{approvals: approvals, logger: logger}
}

// StartBootstrap role-gates a fresh session and, for a manager, raises the
// loading flag before any fetch is issued. Non-manager identities empty the
// store and return false.
func (s *ManagerStore) StartBootstrap(identity domain.Identity) bool {
	if identity.Role != domain.RoleManager {
		s.Reset()
		return false
	}
	s.loading.Store(true)
	return true
}

// Bootstrap performs the initial load for a freshly authenticated session.
// Non-manager identities get an emptied store and zero backend calls.
func (s *ManagerStore) Bootstrap(ctx context.Context, identity domain.Identity) {
	if !s.StartBootstrap(identity) {
		return
	}
	defer s.loading.Store(false)
	s.RefreshRequirements(ctx, identity.UserID)
}

// Reset empties the requirement collection.
func (s *ManagerStore) Reset() {
	s.requirementList.clear()
	s.loading.Store(false)
}

// RefreshRequirements reloads the manager's own requirements. The backend
// exposes no owner filter on the collection, so ownership is applied here.
func (s *ManagerStore) RefreshRequirements(ctx context.Context, managerID int64) {
	refreshCollection(ctx, &s.requirementList, managerStoreLabel, "requirements", s.logger,
		func(ctx context.Context) ([]domain.JobRequirement, error) {
			all, err := s.approvals.ListRequirements(ctx)
			if err != nil {
				return nil, err
			}
			mine := make([]domain.JobRequirement, 0, len(all))
			for _, req := range all {
				if req.ManagerID == managerID {
					mine = append(mine, req)
				}
			}
			return mine, nil
		})
}

// SubmitRequirement raises a new headcount request and re-fetches the
// manager's requirement list. A creation failure propagates and triggers
// no refetch.
func (s *ManagerStore) SubmitRequirement(ctx context.Context, identity domain.Identity, req domain.CreateRequirementRequest) error {
	if _, err := s.approvals.CreateRequirement(ctx, req); err != nil {
		return fmt.Errorf("submit requirement: %w", err)
	}
	s.RefreshRequirements(ctx, identity.UserID)
	return nil
}

// Requirements returns the manager's current requirements.
func (s *ManagerStore) Requirements() []domain.JobRequirement {
	return s.requirementList.snapshot()
}

// Loading reports whether the initial load is still in flight.
func (s *ManagerStore) Loading() bool {
	return s.loading.Load() || s.requirementList.isLoading()
}
