package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

const (
	requirementsBase        = "/admin/JobRequirements"
	managerRequirementsBase = "/manager/JobRequirements"
)

var _ gateway.ApprovalGateway = (*approvalGateway)(nil)

type approvalGateway struct {
	client *transport.Client
}

// NewApprovalGateway creates the REST implementation of the approval gateway.
func NewApprovalGateway(client *transport.Client) gateway.ApprovalGateway {
	return &approvalGateway{client: client}
}

func (g *approvalGateway) ListRequirements(ctx context.Context) ([]domain.JobRequirement, error) {
	var dtos []requirementDTO
	if err := g.client.Get(ctx, requirementsBase, &dtos); err != nil {
		return nil, err
	}
	return toRequirements(dtos)
}

func (g *approvalGateway) CreateRequirement(ctx context.Context, req domain.CreateRequirementRequest) (domain.JobRequirement, error) {
	var dto requirementDTO
	if err := g.client.Post(ctx, managerRequirementsBase, req, &dto); err != nil {
		return domain.JobRequirement{}, err
	}
	return toRequirement(dto)
}

// ListPending fetches the full requirement list and keeps the undecided ones.
// The backend exposes no status filter on this collection.
func (g *approvalGateway) ListPending(ctx context.Context) ([]domain.JobRequirement, error) {
	all, err := g.ListRequirements(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.JobRequirement, 0, len(all))
	for _, req := range all {
		if req.Status == domain.RequirementPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (g *approvalGateway) SetStatus(ctx context.Context, id int64, status domain.RequirementStatus) (domain.JobRequirement, error) {
	if !status.Terminal() {
		return domain.JobRequirement{}, fmt.Errorf("%w: %s is not an approval decision", domain.ErrUnknownStatus, status)
	}
	var dto requirementDTO
	path := fmt.Sprintf("%s/%d/status?status=%d", requirementsBase, id, int(status))
	if err := g.client.Put(ctx, path, nil, &dto); err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.JobRequirement{}, fmt.Errorf("requirement %d: %w", id, domain.ErrNotFound)
		}
		return domain.JobRequirement{}, err
	}
	return toRequirement(dto)
}
