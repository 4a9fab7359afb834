package domain

import (
	"errors"
	"testing"
)

func TestRequirementStatus_Transitions(t *testing.T) {
	if RequirementPending.Terminal() {
		t.Error("Pending should not be terminal")
	}
	if !RequirementApproved.Terminal() || !RequirementRejected.Terminal() {
		t.Error("Approved and Rejected should be terminal")
	}
	if _, err := RequirementStatusFromCode(3); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus for code 3, got %v", err)
	}
	if s, err := RequirementStatusFromCode(1); err != nil || s != RequirementApproved {
		t.Errorf("RequirementStatusFromCode(1) = %v, %v", s, err)
	}
}

func TestApplicationStatus_Machine(t *testing.T) {
	allowed := []struct {
		from, to ApplicationStatus
	}{
		{ApplicationApplied, ApplicationScheduled},
		{ApplicationScheduled, ApplicationInProgress},
		{ApplicationInProgress, ApplicationSelected},
		{ApplicationApplied, ApplicationRejected},
		{ApplicationScheduled, ApplicationRejected},
		{ApplicationInProgress, ApplicationRejected},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to ApplicationStatus
	}{
		{ApplicationApplied, ApplicationInProgress},
		{ApplicationApplied, ApplicationSelected},
		{ApplicationSelected, ApplicationRejected},
		{ApplicationRejected, ApplicationApplied},
		{ApplicationScheduled, ApplicationStatus("bogus")},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestInterviewStatus_Machine(t *testing.T) {
	if !InterviewScheduled.CanTransitionTo(InterviewInProgress) {
		t.Error("Scheduled -> In Progress should be allowed")
	}
	if !InterviewScheduled.CanTransitionTo(InterviewCancelled) {
		t.Error("Scheduled -> Cancelled should be allowed")
	}
	if !InterviewInProgress.CanTransitionTo(InterviewCompleted) {
		t.Error("In Progress -> Completed should be allowed")
	}
	if InterviewInProgress.CanTransitionTo(InterviewCancelled) {
		t.Error("In Progress -> Cancelled should be denied")
	}
	if InterviewCompleted.CanTransitionTo(InterviewInProgress) {
		t.Error("terminal states admit no transitions")
	}
}
