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
	adminInterviewsBase       = "/admin/Interviews"
	interviewerInterviewsBase = "/interviewer/Interviews"
)

var _ gateway.InterviewGateway = (*interviewGateway)(nil)

type interviewGateway struct {
	client *transport.Client
}

// NewInterviewGateway creates the REST implementation of the interview gateway.
func NewInterviewGateway(client *transport.Client) gateway.InterviewGateway {
	return &interviewGateway{client: client}
}

func (g *interviewGateway) ListAll(ctx context.Context) ([]domain.Interview, error) {
	var dtos []interviewDTO
	if err := g.client.Get(ctx, adminInterviewsBase, &dtos); err != nil {
		return nil, err
	}
	return toInterviews(dtos), nil
}

func (g *interviewGateway) ListMine(ctx context.Context) ([]domain.Interview, error) {
	var dtos []interviewDTO
	if err := g.client.Get(ctx, interviewerInterviewsBase, &dtos); err != nil {
		return nil, err
	}
	return toInterviews(dtos), nil
}

func (g *interviewGateway) Create(ctx context.Context, req domain.CreateInterviewRequest) (domain.Interview, error) {
	var dto interviewDTO
	if err := g.client.Post(ctx, adminInterviewsBase, req, &dto); err != nil {
		return domain.Interview{}, err
	}
	return toInterview(dto), nil
}

func (g *interviewGateway) Update(ctx context.Context, id int64, req domain.UpdateInterviewRequest) (domain.Interview, error) {
	var dto interviewDTO
	err := g.client.Put(ctx, fmt.Sprintf("%s/%d", adminInterviewsBase, id), req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.Interview{}, fmt.Errorf("interview %d: %w", id, domain.ErrNotFound)
		}
		return domain.Interview{}, err
	}
	return toInterview(dto), nil
}
