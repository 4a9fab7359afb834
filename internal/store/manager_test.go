package store

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	mockgw "github.com/recruitdesk/recruitdesk/internal/gateway/mock"
)

func TestManagerStore_Bootstrap_KeepsOnlyOwnRequirements(t *testing.T) {
	approvals := mockgw.NewApprovalGateway()
	approvals.ListRequirementsFunc = func(ctx context.Context) ([]domain.JobRequirement, error) {
		return []domain.JobRequirement{
			{RequirementID: 41, ManagerID: 5, Status: domain.RequirementApproved},
			{RequirementID: 42, ManagerID: 6, Status: domain.RequirementPending},
			{RequirementID: 43, ManagerID: 5, Status: domain.RequirementPending},
		}, nil
	}
	s := NewManagerStore(approvals, zap.NewNop())

	s.Bootstrap(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleManager})

	mine := s.Requirements()
	if len(mine) != 2 {
		t.Fatalf("expected 2 own requirements, got %d", len(mine))
	}
	if mine[0].RequirementID != 41 || mine[1].RequirementID != 43 {
		t.Errorf("unexpected requirement ids: %d, %d", mine[0].RequirementID, mine[1].RequirementID)
	}
	if s.Loading() {
		t.Error("loading flag must clear after bootstrap completes")
	}
}

func TestManagerStore_Bootstrap_WrongRoleIssuesNoCalls(t *testing.T) {
	approvals := mockgw.NewApprovalGateway()
	s := NewManagerStore(approvals, zap.NewNop())

	s.Bootstrap(context.Background(), domain.Identity{UserID: 7, Role: domain.RoleCandidate})

	if approvals.ListRequirementsCalls != 0 {
		t.Errorf("expected zero backend calls, got %d", approvals.ListRequirementsCalls)
	}
	if s.Loading() || len(s.Requirements()) != 0 {
		t.Error("store must be empty and idle for a role-mismatched session")
	}
}

func TestManagerStore_SubmitRequirement_RefetchAfterWrite(t *testing.T) {
	approvals := mockgw.NewApprovalGateway()
	approvals.ListRequirementsFunc = func(ctx context.Context) ([]domain.JobRequirement, error) {
		return []domain.JobRequirement{
			{RequirementID: 44, ManagerID: 5, JobTitle: "Platform Engineer", Status: domain.RequirementPending},
		}, nil
	}
	s := NewManagerStore(approvals, zap.NewNop())
	identity := domain.Identity{UserID: 5, Role: domain.RoleManager}

	err := s.SubmitRequirement(context.Background(), identity, domain.CreateRequirementRequest{
		JobTitle:         "Platform Engineer",
		YearsExperience:  4,
		NumberOfOpenings: 2,
		NumberOfRounds:   3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if approvals.CreateRequirementCalls != 1 {
		t.Errorf("expected one create call, got %d", approvals.CreateRequirementCalls)
	}
	if approvals.ListRequirementsCalls != 1 {
		t.Errorf("submission must refresh the requirement list once, got %d", approvals.ListRequirementsCalls)
	}
	reqs := s.Requirements()
	if len(reqs) != 1 || reqs[0].RequirementID != 44 {
		t.Errorf("unexpected requirements after submit: %+v", reqs)
	}
}

func TestManagerStore_SubmitRequirement_FailureSkipsRefetch(t *testing.T) {
	approvals := mockgw.NewApprovalGateway()
	backendErr := errors.New("backend down")
	approvals.CreateRequirementFunc = func(ctx context.Context, req domain.CreateRequirementRequest) (domain.JobRequirement, error) {
		return domain.JobRequirement{}, backendErr
	}
	s := NewManagerStore(approvals, zap.NewNop())

	err := s.SubmitRequirement(context.Background(), domain.Identity{UserID: 5, Role: domain.RoleManager}, domain.CreateRequirementRequest{JobTitle: "SRE"})
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected the backend error, got %v", err)
	}
	if approvals.ListRequirementsCalls != 0 {
		t.Errorf("a failed create must not refetch, got %d calls", approvals.ListRequirementsCalls)
	}
}
