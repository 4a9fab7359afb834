package store

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/feedbackmark"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
)

const interviewerStoreLabel = "interviewer"

// InterviewerStore owns the interviewer's assigned interviews and submits
// their evaluations. It records advisory marks so the view can grey out
// already-evaluated interviews; the authoritative existence check remains
// FeedbackFor.
type InterviewerStore struct {
	interviews gateway.InterviewGateway
	feedback   gateway.FeedbackGateway
	marks      feedbackmark.Store
	logger     *zap.Logger

	interviewList collection[domain.Interview]
	loading       atomic.Bool
}

// NewInterviewerStore creates an empty interviewer store.
func NewInterviewerStore(
	interviews gateway.InterviewGateway,
	feedback gateway.FeedbackGateway,
	marks feedbackmark.Store,
	logger *zap.Logger,
) *InterviewerStore {
	return &InterviewerStore{interviews: interviews, feedback: feedback, marks: marks, logger: logger}
}

// StartBootstrap role-gates a fresh session and, for an interviewer, raises
// the loading flag before any fetch is issued, so callers that background
// the fetch never expose a ready-but-empty schedule between login and the
// first fetch. Non-interviewer identities empty the store and return false.
func (s *InterviewerStore) StartBootstrap(identity domain.Identity) bool {
	if identity.Role != domain.RoleInterviewer {
		s.Reset()
		return false
	}
	s.loading.Store(true)
	return true
}

// Bootstrap performs the initial load for a freshly authenticated session.
// Non-interviewer identities get an emptied store and zero backend calls.
func (s *InterviewerStore) Bootstrap(ctx context.Context, identity domain.Identity) {
	if !s.StartBootstrap(identity) {
		return
	}
	defer s.loading.Store(false)
	s.RefreshInterviews(ctx)
}

// Reset empties the interview collection.
func (s *InterviewerStore) Reset() {
	s.interviewList.clear()
	s.loading.Store(false)
}

// RefreshInterviews reloads the interviewer's assigned interviews.
func (s *InterviewerStore) RefreshInterviews(ctx context.Context) {
	refreshCollection(ctx, &s.interviewList, interviewerStoreLabel, "interviews", s.logger, s.interviews.ListMine)
}

// SubmitFeedback submits the evaluation for one interview, records the
// advisory mark and re-fetches the interview list. A submission failure
// propagates and records nothing; a mark failure is logged and swallowed
// because the mark only drives a UI affordance.
func (s *InterviewerStore) SubmitFeedback(ctx context.Context, identity domain.Identity, req domain.CreateFeedbackRequest) error {
	if _, err := s.feedback.Create(ctx, req); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}
	if err := s.marks.Mark(ctx, identity.UserID, req.InterviewID); err != nil {
		s.logger.Warn("record feedback mark",
			zap.Int64("interview_id", req.InterviewID),
			zap.Error(err),
		)
	}
	s.RefreshInterviews(ctx)
	return nil
}

// UpdateFeedback edits a previously submitted evaluation.
func (s *InterviewerStore) UpdateFeedback(ctx context.Context, feedbackID int64, req domain.UpdateFeedbackRequest) error {
	if _, err := s.feedback.Update(ctx, feedbackID, req); err != nil {
		return fmt.Errorf("update feedback %d: %w", feedbackID, err)
	}
	s.RefreshInterviews(ctx)
	return nil
}

// HasSubmitted consults the advisory mark store. Errors degrade to "not
// submitted": the worst outcome is an enabled button the backend will reject.
func (s *InterviewerStore) HasSubmitted(ctx context.Context, identity domain.Identity, interviewID int64) bool {
	marked, err := s.marks.IsMarked(ctx, identity.UserID, interviewID)
	if err != nil {
		s.logger.Debug("feedback mark lookup failed",
			zap.Int64("interview_id", interviewID),
			zap.Error(err),
		)
		return false
	}
	return marked
}

// FeedbackFor is the authoritative lookup of an interview's feedback.
func (s *InterviewerStore) FeedbackFor(ctx context.Context, interviewID int64) (domain.InterviewFeedback, error) {
	return s.feedback.ByInterview(ctx, interviewID)
}

// Interviews returns a snapshot of the assigned interviews.
func (s *InterviewerStore) Interviews() []domain.Interview {
	return s.interviewList.snapshot()
}

// Loading reports whether the initial load is still in flight.
func (s *InterviewerStore) Loading() bool {
	return s.loading.Load()
}
