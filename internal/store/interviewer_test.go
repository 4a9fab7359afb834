package store

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/feedbackmark"
	mockgw "github.com/recruitdesk/recruitdesk/internal/gateway/mock"
)

func TestInterviewerStore_Bootstrap_WrongRoleIssuesNoCalls(t *testing.T) {
	interviews := mockgw.NewInterviewGateway()
	s := NewInterviewerStore(interviews, mockgw.NewFeedbackGateway(), feedbackmark.NewMemoryStore(), zap.NewNop())

	s.Bootstrap(context.Background(), domain.Identity{UserID: 3, Role: domain.RoleHR})

	if interviews.ListMineCalls != 0 {
		t.Errorf("expected zero backend calls, got %d", interviews.ListMineCalls)
	}
	if s.Loading() || len(s.Interviews()) != 0 {
		t.Error("store must be empty and idle for a role-mismatched session")
	}
}

func TestInterviewerStore_SubmitFeedback_MarksAndRefreshes(t *testing.T) {
	interviews := mockgw.NewInterviewGateway()
	interviews.ListMineFunc = func(ctx context.Context) ([]domain.Interview, error) {
		return []domain.Interview{{InterviewID: 21, Status: domain.InterviewCompleted}}, nil
	}
	feedback := mockgw.NewFeedbackGateway()
	marks := feedbackmark.NewMemoryStore()
	s := NewInterviewerStore(interviews, feedback, marks, zap.NewNop())
	identity := domain.Identity{UserID: 4, Role: domain.RoleInterviewer}

	err := s.SubmitFeedback(context.Background(), identity, domain.CreateFeedbackRequest{
		InterviewID:    21,
		OverallRating:  4,
		Recommendation: domain.RecommendationAccepted,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.HasSubmitted(context.Background(), identity, 21) {
		t.Error("expected advisory mark after a successful submission")
	}
	if interviews.ListMineCalls != 1 {
		t.Errorf("submission must refresh the interview list once, got %d", interviews.ListMineCalls)
	}
}

func TestInterviewerStore_SubmitFeedback_FailureRecordsNothing(t *testing.T) {
	interviews := mockgw.NewInterviewGateway()
	feedback := mockgw.NewFeedbackGateway()
	backendErr := errors.New("feedback already exists")
	feedback.CreateFunc = func(ctx context.Context, req domain.CreateFeedbackRequest) (domain.InterviewFeedback, error) {
		return domain.InterviewFeedback{}, backendErr
	}
	marks := feedbackmark.NewMemoryStore()
	s := NewInterviewerStore(interviews, feedback, marks, zap.NewNop())
	identity := domain.Identity{UserID: 4, Role: domain.RoleInterviewer}

	err := s.SubmitFeedback(context.Background(), identity, domain.CreateFeedbackRequest{InterviewID: 21})
	if !errors.Is(err, backendErr) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if s.HasSubmitted(context.Background(), identity, 21) {
		t.Error("a failed submission must not record a mark")
	}
	if interviews.ListMineCalls != 0 {
		t.Error("a failed submission must not trigger a refetch")
	}
}

// A mark store failure degrades the check to false instead of surfacing.
func TestInterviewerStore_HasSubmitted_ErrorDegradesToFalse(t *testing.T) {
	s := NewInterviewerStore(
		mockgw.NewInterviewGateway(),
		mockgw.NewFeedbackGateway(),
		failingMarkStore{},
		zap.NewNop(),
	)
	identity := domain.Identity{UserID: 4, Role: domain.RoleInterviewer}

	if s.HasSubmitted(context.Background(), identity, 21) {
		t.Error("an errored mark lookup must report not-submitted")
	}
}

// The mark store failing must not fail the submission itself.
func TestInterviewerStore_SubmitFeedback_MarkFailureIsSwallowed(t *testing.T) {
	interviews := mockgw.NewInterviewGateway()
	s := NewInterviewerStore(interviews, mockgw.NewFeedbackGateway(), failingMarkStore{}, zap.NewNop())
	identity := domain.Identity{UserID: 4, Role: domain.RoleInterviewer}

	err := s.SubmitFeedback(context.Background(), identity, domain.CreateFeedbackRequest{InterviewID: 21})
	if err != nil {
		t.Fatalf("mark failure must not fail the submission, got %v", err)
	}
	if interviews.ListMineCalls != 1 {
		t.Error("submission must still refresh after a mark failure")
	}
}

func TestInterviewerStore_FeedbackFor_AuthoritativeLookup(t *testing.T) {
	feedback := mockgw.NewFeedbackGateway()
	feedback.ByInterviewFunc = func(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error) {
		return domain.InterviewFeedback{FeedbackID: 9, InterviewID: interviewID}, nil
	}
	s := NewInterviewerStore(mockgw.NewInterviewGateway(), feedback, feedbackmark.NewMemoryStore(), zap.NewNop())

	fb, err := s.FeedbackFor(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.FeedbackID != 9 || fb.InterviewID != 21 {
		t.Errorf("unexpected feedback: %+v", fb)
	}
}

type failingMarkStore struct{}

func (failingMarkStore) Mark(context.Context, int64, int64) error {
	return errors.New("mark store unavailable")
}

func (failingMarkStore) IsMarked(context.Context, int64, int64) (bool, error) {
	return false, errors.New("mark store unavailable")
}

func (failingMarkStore) Clear(context.Context, int64) error {
	return errors.New("mark store unavailable")
}
