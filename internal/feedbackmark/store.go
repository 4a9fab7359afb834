// Package feedbackmark records which interviews an interviewer has already
// submitted feedback for. The marks are ADVISORY ONLY: they exist so the UI
// can disable a submit control without a backend round trip. The
// authoritative feedback-existence check is the feedback gateway; a missing,
// stale or unreachable mark must never change what the system believes about
// the backend's state.
package feedbackmark

import "context"

// Store holds advisory submitted-feedback marks, keyed per interviewer.
// Implementations must be safe for concurrent use.
type Store interface {
	// Mark records that the interviewer submitted feedback for the interview.
	Mark(ctx context.Context, interviewerID, interviewID int64) error

	// IsMarked reports whether a mark exists. Callers must treat an error
	// the same as "not marked".
	IsMarked(ctx context.Context, interviewerID, interviewID int64) (bool, error)

	// Clear removes all marks for the interviewer.
	Clear(ctx context.Context, interviewerID int64) error
}
