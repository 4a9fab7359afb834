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
	candidateApplicationsBase = "/candidate/Applications"
	adminApplicationsBase     = "/admin/Applications"
)

var _ gateway.ApplicationGateway = (*applicationGateway)(nil)

type applicationGateway struct {
	client *transport.Client
}

// NewApplicationGateway creates the REST implementation of the application gateway.
func NewApplicationGateway(client *transport.Client) gateway.ApplicationGateway {
	return &applicationGateway{client: client}
}

func (g *applicationGateway) ListMine(ctx context.Context) ([]domain.Application, error) {
	var dtos []applicationDTO
	if err := g.client.Get(ctx, candidateApplicationsBase, &dtos); err != nil {
		return nil, err
	}
	return toApplications(dtos), nil
}

func (g *applicationGateway) Create(ctx context.Context, req domain.CreateApplicationRequest) (domain.Application, error) {
	var dto applicationDTO
	err := g.client.Post(ctx, candidateApplicationsBase, req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusConflict {
			return domain.Application{}, fmt.Errorf("job %d: %w", req.JobID, domain.ErrDuplicateApplication)
		}
		return domain.Application{}, err
	}
	return toApplication(dto), nil
}

func (g *applicationGateway) ListAll(ctx context.Context) ([]domain.Application, error) {
	var dtos []applicationDTO
	if err := g.client.Get(ctx, adminApplicationsBase, &dtos); err != nil {
		return nil, err
	}
	return toApplications(dtos), nil
}

func (g *applicationGateway) Update(ctx context.Context, id int64, req domain.UpdateApplicationRequest) (domain.Application, error) {
	var dto applicationDTO
	err := g.client.Put(ctx, fmt.Sprintf("%s/%d", adminApplicationsBase, id), req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.Application{}, fmt.Errorf("application %d: %w", id, domain.ErrNotFound)
		}
		return domain.Application{}, err
	}
	return toApplication(dto), nil
}

func (g *applicationGateway) WeeklyCounts(ctx context.Context) ([]domain.DailyApplicationCount, error) {
	var dtos []dailyCountDTO
	if err := g.client.Get(ctx, adminApplicationsBase+"/analytics/weekly", &dtos); err != nil {
		return nil, err
	}
	return toDailyCounts(dtos), nil
}
