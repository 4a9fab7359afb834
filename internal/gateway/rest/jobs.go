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
	candidateJobsBase = "/candidate/Jobs"
	adminJobsBase     = "/admin/Jobs"
)

var _ gateway.JobGateway = (*jobGateway)(nil)

type jobGateway struct {
	client *transport.Client
}

// NewJobGateway creates the REST implementation of the job gateway.
func NewJobGateway(client *transport.Client) gateway.JobGateway {
	return &jobGateway{client: client}
}

func (g *jobGateway) ListOpen(ctx context.Context) ([]domain.Job, error) {
	var dtos []jobDTO
	if err := g.client.Get(ctx, candidateJobsBase, &dtos); err != nil {
		return nil, err
	}
	return toJobs(dtos), nil
}

func (g *jobGateway) Get(ctx context.Context, id int64) (domain.Job, error) {
	var dto jobDTO
	err := g.client.Get(ctx, fmt.Sprintf("%s/%d", candidateJobsBase, id), &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.Job{}, fmt.Errorf("job %d: %w", id, domain.ErrNotFound)
		}
		return domain.Job{}, err
	}
	return toJob(dto), nil
}

func (g *jobGateway) ListAll(ctx context.Context) ([]domain.Job, error) {
	var dtos []jobDTO
	if err := g.client.Get(ctx, adminJobsBase, &dtos); err != nil {
		return nil, err
	}
	return toJobs(dtos), nil
}

func (g *jobGateway) Create(ctx context.Context, req domain.CreateJobRequest) (domain.Job, error) {
	var dto jobDTO
	if err := g.client.Post(ctx, adminJobsBase, req, &dto); err != nil {
		return domain.Job{}, err
	}
	return toJob(dto), nil
}

func (g *jobGateway) Update(ctx context.Context, id int64, req domain.UpdateJobRequest) (domain.Job, error) {
	var dto jobDTO
	err := g.client.Put(ctx, fmt.Sprintf("%s/%d", adminJobsBase, id), req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.Job{}, fmt.Errorf("job %d: %w", id, domain.ErrNotFound)
		}
		return domain.Job{}, err
	}
	return toJob(dto), nil
}
