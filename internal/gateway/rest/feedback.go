package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

const feedbackBase = "/interviewer/Feedback"

var _ gateway.FeedbackGateway = (*feedbackGateway)(nil)

type feedbackGateway struct {
	client *transport.Client
}

// NewFeedbackGateway creates the REST implementation of the feedback gateway.
func NewFeedbackGateway(client *transport.Client) gateway.FeedbackGateway {
	return &feedbackGateway{client: client}
}

// ByInterview is the authoritative existence check for an interview's feedback.
func (g *feedbackGateway) ByInterview(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error) {
	var dto feedbackDTO
	err := g.client.Get(ctx, fmt.Sprintf("%s/interview/%d", feedbackBase, interviewID), &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.InterviewFeedback{}, fmt.Errorf("feedback for interview %d: %w", interviewID, domain.ErrNotFound)
		}
		return domain.InterviewFeedback{}, err
	}
	return toFeedback(dto), nil
}

func (g *feedbackGateway) Create(ctx context.Context, req domain.CreateFeedbackRequest) (domain.InterviewFeedback, error) {
	var dto feedbackDTO
	if err := g.client.Post(ctx, feedbackBase, req, &dto); err != nil {
		return domain.InterviewFeedback{}, err
	}
	return toFeedback(dto), nil
}

func (g *feedbackGateway) Update(ctx context.Context, id int64, req domain.UpdateFeedbackRequest) (domain.InterviewFeedback, error) {
	var dto feedbackDTO
	err := g.client.Put(ctx, fmt.Sprintf("%s/%d", feedbackBase, id), req, &dto)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.InterviewFeedback{}, fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
		}
		return domain.InterviewFeedback{}, err
	}
	return toFeedback(dto), nil
}
