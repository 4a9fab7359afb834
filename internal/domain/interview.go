package domain

import "time"

// InterviewStatus is the lifecycle state of one scheduled interview round.
type InterviewStatus string

const (
	InterviewScheduled  InterviewStatus = "Scheduled"
	InterviewInProgress InterviewStatus = "In Progress"
	InterviewCompleted  InterviewStatus = "Completed"
	InterviewCancelled  InterviewStatus = "Cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewScheduled, InterviewInProgress, InterviewCompleted, InterviewCancelled:
		return true
	}
	return false
}

// Terminal reports whether the interview round has ended.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewCompleted || s == InterviewCancelled
}

// CanTransitionTo reports whether the status machine permits moving to next.
// Scheduled -> In Progress -> Completed; Scheduled -> Cancelled.
func (s InterviewStatus) CanTransitionTo(next InterviewStatus) bool {
	switch s {
	case InterviewScheduled:
		return next == InterviewInProgress || next == InterviewCancelled
	case InterviewInProgress:
		return next == InterviewCompleted
	}
	return false
}

// Interview is one scheduled round for an application, assigned to an
// interviewer by an HR user.
type Interview struct {
	InterviewID    int64           `json:"interviewId"`
	ApplicationID  int64           `json:"applicationId"`
	InterviewerID  int64           `json:"interviewerId"`
	HrID           int64           `json:"hrId"`
	RoundNumber    int             `json:"roundNumber"`
	ScheduledTime  time.Time       `json:"scheduledTime"`
	MeetingLink    string          `json:"meetingLink"`
	MeetingDetails string          `json:"meetingDetails"`
	Status         InterviewStatus `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CreateInterviewRequest schedules a new interview round.
type CreateInterviewRequest struct {
	ApplicationID  int64     `json:"applicationId"`
	InterviewerID  int64     `json:"interviewerId"`
	RoundNumber    int       `json:"roundNumber"`
	ScheduledTime  time.Time `json:"scheduledTime"`
	MeetingLink    string    `json:"meetingLink"`
	MeetingDetails string    `json:"meetingDetails"`
}

// UpdateInterviewRequest carries the mutable interview fields.
type UpdateInterviewRequest struct {
	ScheduledTime  *time.Time       `json:"scheduledTime,omitempty"`
	MeetingLink    *string          `json:"meetingLink,omitempty"`
	MeetingDetails *string          `json:"meetingDetails,omitempty"`
	Status         *InterviewStatus `json:"status,omitempty"`
}

// Recommendation is the interviewer's hiring verdict for one round.
type Recommendation string

const (
	RecommendationAccepted Recommendation = "Accepted"
	RecommendationRejected Recommendation = "Rejected"
	RecommendationPending  Recommendation = "Pending"
)

// Valid reports whether the recommendation is a known verdict.
func (r Recommendation) Valid() bool {
	return r == RecommendationAccepted || r == RecommendationRejected || r == RecommendationPending
}

// InterviewFeedback is the interviewer's structured evaluation of one round.
// Created once per interview, editable afterwards. Component ratings and the
// overall rating are on a 0-5 scale.
type InterviewFeedback struct {
	FeedbackID          int64          `json:"feedbackId"`
	InterviewID         int64          `json:"interviewId"`
	InterviewerID       int64          `json:"interviewerId"`
	TechnicalSkills     int            `json:"technicalSkills"`
	CommunicationSkills int            `json:"communicationSkills"`
	ProblemSolving      int            `json:"problemSolving"`
	CulturalFit         int            `json:"culturalFit"`
	OverallRating       int            `json:"overallRating"`
	Comments            string         `json:"comments"`
	Recommendation      Recommendation `json:"recommendation"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// CreateFeedbackRequest is the interviewer's evaluation payload.
type CreateFeedbackRequest struct {
	InterviewID         int64          `json:"interviewId"`
	TechnicalSkills     int            `json:"technicalSkills"`
	CommunicationSkills int            `json:"communicationSkills"`
	ProblemSolving      int            `json:"problemSolving"`
	CulturalFit         int            `json:"culturalFit"`
	OverallRating       int            `json:"overallRating"`
	Comments            string         `json:"comments"`
	Recommendation      Recommendation `json:"recommendation"`
}

// UpdateFeedbackRequest carries the editable feedback fields.
type UpdateFeedbackRequest struct {
	TechnicalSkills     *int            `json:"technicalSkills,omitempty"`
	CommunicationSkills *int            `json:"communicationSkills,omitempty"`
	ProblemSolving      *int            `json:"problemSolving,omitempty"`
	CulturalFit         *int            `json:"culturalFit,omitempty"`
	OverallRating       *int            `json:"overallRating,omitempty"`
	Comments            *string         `json:"comments,omitempty"`
	Recommendation      *Recommendation `json:"recommendation,omitempty"`
}

// DashboardMetrics is the headline summary shown on the HR dashboard.
type DashboardMetrics struct {
	ActiveJobs          int `json:"activeJobs"`
	TotalApplications   int `json:"totalApplications"`
	PendingReview       int `json:"pendingReview"`
	ScheduledInterviews int `json:"scheduledInterviews"`
}
