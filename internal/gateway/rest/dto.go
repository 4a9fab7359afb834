// Package rest implements the gateway interfaces against the recruitment
// backend's REST API. The backend's wire shape uses capitalized field names;
// every record passes through a pure, total transform before it reaches
// application state. This casing seam is the contract, not an accident.
package rest

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/recruitdesk/recruitdesk/internal/domain"
)

type applicationDTO struct {
	ApplicationID int64  `json:"ApplicationId"`
	JobID         int64  `json:"JobId"`
	CandidateID   int64  `json:"CandidateId"`
	FirstName     string `json:"FirstName"`
	LastName      string `json:"LastName"`
	Email         string `json:"Email"`
	Phone         string `json:"Phone"`
	ResumePath    string `json:"ResumePath"`
	KeywordScore  int    `json:"KeywordScore"`
	Status        string `json:"Status"`
	CurrentRound  int    `json:"CurrentRound"`
	CreatedAt     string `json:"CreatedAt"`
	UpdatedAt     string `json:"UpdatedAt"`
}

type interviewDTO struct {
	InterviewID    int64  `json:"InterviewId"`
	ApplicationID  int64  `json:"ApplicationId"`
	InterviewerID  int64  `json:"InterviewerId"`
	HrID           int64  `json:"HrId"`
	RoundNumber    int    `json:"RoundNumber"`
	ScheduledTime  string `json:"ScheduledTime"`
	MeetingLink    string `json:"MeetingLink"`
	MeetingDetails string `json:"MeetingDetails"`
	Status         string `json:"Status"`
	CreatedAt      string `json:"CreatedAt"`
	UpdatedAt      string `json:"UpdatedAt"`
}

type jobDTO struct {
	JobID            int64    `json:"JobId"`
	RequirementID    int64    `json:"RequirementId"`
	JobTitle         string   `json:"JobTitle"`
	JobDescription   string   `json:"JobDescription"`
	YearsExperience  int      `json:"YearsExperience"`
	RequiredSkills   []string `json:"RequiredSkills"`
	NumberOfOpenings int      `json:"NumberOfOpenings"`
	NumberOfRounds   int      `json:"NumberOfRounds"`
	Status           string   `json:"Status"`
	CreatedAt        string   `json:"CreatedAt"`
	UpdatedAt        string   `json:"UpdatedAt"`
}

type requirementDTO struct {
	RequirementID    int64  `json:"RequirementId"`
	ManagerID        int64  `json:"ManagerId"`
	JobTitle         string `json:"JobTitle"`
	JobDescription   string `json:"JobDescription"`
	YearsExperience  int    `json:"YearsExperience"`
	RequiredSkills   string `json:"RequiredSkills"`
	NumberOfOpenings int    `json:"NumberOfOpenings"`
	NumberOfRounds   int    `json:"NumberOfRounds"`
	// The backend has emitted both the bare code 0 and the quoted code "0".
	Status    flexScalar `json:"Status"`
	CreatedAt string     `json:"CreatedAt"`
	UpdatedAt string     `json:"UpdatedAt"`
}

type userDTO struct {
	UserID    int64  `json:"UserId"`
	Email     string `json:"Email"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Phone     string `json:"Phone"`
	// The backend emits the role as a numeric code, a quoted code or a label.
	Role      flexScalar `json:"Role"`
	IsActive  bool       `json:"IsActive"`
	CreatedAt string     `json:"CreatedAt"`
	UpdatedAt string     `json:"UpdatedAt"`
}

type feedbackDTO struct {
	FeedbackID          int64  `json:"FeedbackId"`
	InterviewID         int64  `json:"InterviewId"`
	InterviewerID       int64  `json:"InterviewerId"`
	TechnicalSkills     int    `json:"TechnicalSkills"`
	CommunicationSkills int    `json:"CommunicationSkills"`
	ProblemSolving      int    `json:"ProblemSolving"`
	CulturalFit         int    `json:"CulturalFit"`
	OverallRating       int    `json:"OverallRating"`
	Comments            string `json:"Comments"`
	Recommendation      string `json:"Recommendation"`
	CreatedAt           string `json:"CreatedAt"`
	UpdatedAt           string `json:"UpdatedAt"`
}

type sessionDTO struct {
	Token     string     `json:"Token"`
	UserID    int64      `json:"UserId"`
	Email     string     `json:"Email"`
	FirstName string     `json:"FirstName"`
	LastName  string     `json:"LastName"`
	Role      flexScalar `json:"Role"`
	ExpiresAt string     `json:"ExpiresAt"`
}

type dailyCountDTO struct {
	Date  string `json:"Date"`
	Count int    `json:"Count"`
}

// flexScalar accepts a JSON number or string and holds its textual form.
type flexScalar string

func (f *flexScalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	*f = flexScalar(data)
	return nil
}

// parseTime decodes the backend's RFC3339 timestamps. A malformed timestamp
// yields the zero time rather than dropping the record.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toApplication(dto applicationDTO) domain.Application {
	return domain.Application{
		ApplicationID: dto.ApplicationID,
		JobID:         dto.JobID,
		CandidateID:   dto.CandidateID,
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		Email:         dto.Email,
		Phone:         dto.Phone,
		ResumePath:    dto.ResumePath,
		KeywordScore:  dto.KeywordScore,
		Status:        domain.ApplicationStatus(dto.Status),
		CurrentRound:  dto.CurrentRound,
		CreatedAt:     parseTime(dto.CreatedAt),
		UpdatedAt:     parseTime(dto.UpdatedAt),
	}
}

func toApplications(dtos []applicationDTO) []domain.Application {
	out := make([]domain.Application, len(dtos))
	for i, dto := range dtos {
		out[i] = toApplication(dto)
	}
	return out
}

func toInterview(dto interviewDTO) domain.Interview {
	return domain.Interview{
		InterviewID:    dto.InterviewID,
		ApplicationID:  dto.ApplicationID,
		InterviewerID:  dto.InterviewerID,
		HrID:           dto.HrID,
		RoundNumber:    dto.RoundNumber,
		ScheduledTime:  parseTime(dto.ScheduledTime),
		MeetingLink:    dto.MeetingLink,
		MeetingDetails: dto.MeetingDetails,
		Status:         domain.InterviewStatus(dto.Status),
		CreatedAt:      parseTime(dto.CreatedAt),
		UpdatedAt:      parseTime(dto.UpdatedAt),
	}
}

func toInterviews(dtos []interviewDTO) []domain.Interview {
	out := make([]domain.Interview, len(dtos))
	for i, dto := range dtos {
		out[i] = toInterview(dto)
	}
	return out
}

func toJob(dto jobDTO) domain.Job {
	return domain.Job{
		JobID:               dto.JobID,
		SourceRequirementID: dto.RequirementID,
		JobTitle:            dto.JobTitle,
		JobDescription:      dto.JobDescription,
		YearsExperience:     dto.YearsExperience,
		RequiredSkills:      dto.RequiredSkills,
		NumberOfOpenings:    dto.NumberOfOpenings,
		NumberOfRounds:      dto.NumberOfRounds,
		Status:              domain.JobStatus(dto.Status),
		CreatedAt:           parseTime(dto.CreatedAt),
		UpdatedAt:           parseTime(dto.UpdatedAt),
	}
}

func toJobs(dtos []jobDTO) []domain.Job {
	out := make([]domain.Job, len(dtos))
	for i, dto := range dtos {
		out[i] = toJob(dto)
	}
	return out
}

func toRequirement(dto requirementDTO) (domain.JobRequirement, error) {
	code, err := strconv.Atoi(string(dto.Status))
	if err != nil {
		return domain.JobRequirement{}, fmt.Errorf("requirement %d: %w: %q",
			dto.RequirementID, domain.ErrUnknownStatus, string(dto.Status))
	}
	status, err := domain.RequirementStatusFromCode(code)
	if err != nil {
		return domain.JobRequirement{}, fmt.Errorf("requirement %d: %w", dto.RequirementID, err)
	}
	return domain.JobRequirement{
		RequirementID:    dto.RequirementID,
		ManagerID:        dto.ManagerID,
		JobTitle:         dto.JobTitle,
		JobDescription:   dto.JobDescription,
		YearsExperience:  dto.YearsExperience,
		RequiredSkills:   dto.RequiredSkills,
		NumberOfOpenings: dto.NumberOfOpenings,
		NumberOfRounds:   dto.NumberOfRounds,
		Status:           status,
		CreatedAt:        parseTime(dto.CreatedAt),
		UpdatedAt:        parseTime(dto.UpdatedAt),
	}, nil
}

func toRequirements(dtos []requirementDTO) ([]domain.JobRequirement, error) {
	out := make([]domain.JobRequirement, len(dtos))
	for i, dto := range dtos {
		req, err := toRequirement(dto)
		if err != nil {
			return nil, err
		}
		out[i] = req
	}
	return out, nil
}

func toUser(dto userDTO) (domain.User, error) {
	role, err := domain.ParseRole(string(dto.Role))
	if err != nil {
		return domain.User{}, fmt.Errorf("user %d: %w", dto.UserID, err)
	}
	return domain.User{
		UserID:    dto.UserID,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		Role:      role,
		IsActive:  dto.IsActive,
		CreatedAt: parseTime(dto.CreatedAt),
		UpdatedAt: parseTime(dto.UpdatedAt),
	}, nil
}

func toUsers(dtos []userDTO) ([]domain.User, error) {
	out := make([]domain.User, len(dtos))
	for i, dto := range dtos {
		user, err := toUser(dto)
		if err != nil {
			return nil, err
		}
		out[i] = user
	}
	return out, nil
}

func toFeedback(dto feedbackDTO) domain.InterviewFeedback {
	return domain.InterviewFeedback{
		FeedbackID:          dto.FeedbackID,
		InterviewID:         dto.InterviewID,
		InterviewerID:       dto.InterviewerID,
		TechnicalSkills:     dto.TechnicalSkills,
		CommunicationSkills: dto.CommunicationSkills,
		ProblemSolving:      dto.ProblemSolving,
		CulturalFit:         dto.CulturalFit,
		OverallRating:       dto.OverallRating,
		Comments:            dto.Comments,
		Recommendation:      domain.Recommendation(dto.Recommendation),
		CreatedAt:           parseTime(dto.CreatedAt),
		UpdatedAt:           parseTime(dto.UpdatedAt),
	}
}

func toSession(dto sessionDTO) (domain.Session, error) {
	role, err := domain.ParseRole(string(dto.Role))
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token: dto.Token,
		Identity: domain.Identity{
			UserID:    dto.UserID,
			Email:     dto.Email,
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Role:      role,
		},
		ExpiresAt: parseTime(dto.ExpiresAt),
	}, nil
}

func toDailyCounts(dtos []dailyCountDTO) []domain.DailyApplicationCount {
	out := make([]domain.DailyApplicationCount, len(dtos))
	for i, dto := range dtos {
		out[i] = domain.DailyApplicationCount{Date: dto.Date, Count: dto.Count}
	}
	return out
}
