package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/feedbackmark"
	mockgw "github.com/recruitdesk/recruitdesk/internal/gateway/mock"
	"github.com/recruitdesk/recruitdesk/internal/store"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router    *gin.Engine
	auth      *mockgw.AuthGateway
	jobs      *mockgw.JobGateway
	apps      *mockgw.ApplicationGateway
	approvals *mockgw.ApprovalGateway
	stores    Stores
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()

	auth := mockgw.NewAuthGateway()
	jobs := mockgw.NewJobGateway()
	apps := mockgw.NewApplicationGateway()
	interviews := mockgw.NewInterviewGateway()
	approvals := mockgw.NewApprovalGateway()
	users := mockgw.NewUserGateway()
	feedback := mockgw.NewFeedbackGateway()
	logger := zap.NewNop()

	tokens := transport.NewTokenStore()
	stores := Stores{
		Auth:        store.NewAuthStore(auth, tokens, logger),
		Candidate:   store.NewCandidateStore(jobs, apps, logger),
		HR:          store.NewHRStore(jobs, apps, interviews, approvals, users, logger),
		Interviewer: store.NewInterviewerStore(interviews, feedback, feedbackmark.NewMemoryStore(), logger),
		Manager:     store.NewManagerStore(approvals, logger),
	}
	client := transport.NewClient("http://localhost:0", tokens, time.Second, logger)
	router := NewRouter(stores, client, logger, 1000)

	return &testEnv{router: router, auth: auth, jobs: jobs, apps: apps, approvals: approvals, stores: stores}
}

func (e *testEnv) loginAs(t *testing.T, role domain.Role) {
	t.Helper()
	e.auth.LoginFunc = func(ctx context.Context, email, password string) (domain.Session, error) {
		return domain.Session{
			Token:    "test-token",
			Identity: domain.Identity{UserID: 1, Email: email, Role: role},
		}, nil
	}
	if _, err := e.stores.Auth.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	env := setupTestRouter(t)
	env.auth.LoginFunc = func(ctx context.Context, email, password string) (domain.Session, error) {
		return domain.Session{
			Token:    "jwt-abc",
			Identity: domain.Identity{UserID: 7, Email: email, Role: domain.RoleCandidate},
		}, nil
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/session", map[string]any{
		"email": "c@example.com", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Identity domain.Identity `json:"identity"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Identity.UserID != 7 {
		t.Errorf("unexpected identity: %+v", resp.Identity)
	}
}

func TestLogin_DashboardLoadsBeforeFirstFetchSettles(t *testing.T) {
	env := setupTestRouter(t)
	env.auth.LoginFunc = func(ctx context.Context, email, password string) (domain.Session, error) {
		return domain.Session{
			Token:    "jwt-abc",
			Identity: domain.Identity{UserID: 7, Email: email, Role: domain.RoleCandidate},
		}, nil
	}
	// Hold the first fetch open so the window between the login response
	// and the fan-out is observable.
	release := make(chan struct{})
	env.jobs.ListOpenFunc = func(ctx context.Context) ([]domain.Job, error) {
		<-release
		return []domain.Job{{JobID: 1}}, nil
	}
	env.apps.ListMineFunc = func(ctx context.Context) ([]domain.Application, error) {
		<-release
		return []domain.Application{}, nil
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/session", map[string]any{
		"email": "c@example.com", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	// The earliest possible dashboard read must see loading, never a
	// ready-but-empty store.
	if !env.stores.Candidate.Loading() {
		t.Fatal("store must report loading immediately after the login response")
	}

	close(release)
	deadline := time.Now().Add(2 * time.Second)
	for env.stores.Candidate.Loading() {
		if time.Now().After(deadline) {
			t.Fatal("initial load did not settle")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(env.stores.Candidate.Jobs()) != 1 {
		t.Errorf("expected jobs after the load settles, got %d", len(env.stores.Candidate.Jobs()))
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setupTestRouter(t)
	env.auth.LoginFunc = func(ctx context.Context, email, password string) (domain.Session, error) {
		return domain.Session{}, domain.ErrUnauthorized
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/session", map[string]any{
		"email": "c@example.com", "password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := setupTestRouter(t)
	w := doJSON(env.router, http.MethodPost, "/api/v1/session", map[string]any{"email": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestRoleGuard_NoSession(t *testing.T) {
	env := setupTestRouter(t)
	w := doJSON(env.router, http.MethodGet, "/api/v1/candidate/jobs", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestRoleGuard_WrongRole(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)

	w := doJSON(env.router, http.MethodGet, "/api/v1/hr/dashboard", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403 for candidate on HR route, got %d", w.Code)
	}
}

func TestCandidateJobs_FilterAndSort(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)
	env.jobs.ListOpenFunc = func(ctx context.Context) ([]domain.Job, error) {
		return []domain.Job{
			{JobID: 1, JobTitle: "Backend Engineer", Status: domain.JobActive},
			{JobID: 2, JobTitle: "Accountant", Status: domain.JobActive},
			{JobID: 3, JobTitle: "Frontend Engineer", Status: domain.JobClosed},
		}, nil
	}
	env.stores.Candidate.RefreshJobs(context.Background())

	w := doJSON(env.router, http.MethodGet, "/api/v1/candidate/jobs?q=engineer&status=Active&sort=title", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Jobs []domain.Job `json:"jobs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Jobs) != 1 || resp.Jobs[0].JobID != 1 {
		t.Errorf("expected only the active engineer posting, got %+v", resp.Jobs)
	}
}

func TestCandidateJobs_UnknownStatusRejected(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)

	w := doJSON(env.router, http.MethodGet, "/api/v1/candidate/jobs?status=Banana", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCandidateApply_DuplicateConflict(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)
	env.apps.CreateFunc = func(ctx context.Context, req domain.CreateApplicationRequest) (domain.Application, error) {
		return domain.Application{}, domain.ErrDuplicateApplication
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/candidate/applications", map[string]any{
		"jobId": 3, "email": "c@example.com",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409 for a duplicate application, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHRApprove_RefreshesBothLists(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleHR)

	decided := domain.RequirementStatus(-1)
	env.approvals.SetStatusFunc = func(ctx context.Context, id int64, st domain.RequirementStatus) (domain.JobRequirement, error) {
		decided = st
		return domain.JobRequirement{RequirementID: id, Status: st}, nil
	}
	env.approvals.ListRequirementsFunc = func(ctx context.Context) ([]domain.JobRequirement, error) {
		return []domain.JobRequirement{{RequirementID: 42, Status: decided}}, nil
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/hr/approvals/42/approve", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if decided != domain.RequirementApproved {
		t.Errorf("decision sent %v, want approved", decided)
	}

	var resp struct {
		Pending      []domain.JobRequirement `json:"pending"`
		Requirements []domain.JobRequirement `json:"requirements"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Pending) != 0 {
		t.Errorf("pending queue should be empty after the decision, got %+v", resp.Pending)
	}
	if len(resp.Requirements) != 1 || resp.Requirements[0].Status != domain.RequirementApproved {
		t.Errorf("full list should show the approved requirement, got %+v", resp.Requirements)
	}
	if env.approvals.ListPendingCalls != 1 || env.approvals.ListRequirementsCalls != 1 {
		t.Errorf("decision must refresh both lists, got pending=%d requirements=%d",
			env.approvals.ListPendingCalls, env.approvals.ListRequirementsCalls)
	}
}

func TestHRUpdateApplication_InvalidID(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleHR)

	w := doJSON(env.router, http.MethodPut, "/api/v1/hr/applications/abc", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestInterviewerFeedback_NotFound(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleInterviewer)

	// The default feedback mock reports no feedback for any interview.
	w := doJSON(env.router, http.MethodGet, "/api/v1/interviewer/interviews/9/feedback", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInterviewerSubmitFeedback_Success(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleInterviewer)

	w := doJSON(env.router, http.MethodPost, "/api/v1/interviewer/feedback", map[string]any{
		"interviewId":    21,
		"overallRating":  4,
		"recommendation": "Accepted",
	})
	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestManagerSubmitRequirement_ReturnsRefreshedList(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleManager)
	env.approvals.ListRequirementsFunc = func(ctx context.Context) ([]domain.JobRequirement, error) {
		return []domain.JobRequirement{
			{RequirementID: 44, ManagerID: 1, JobTitle: "Platform Engineer", Status: domain.RequirementPending},
		}, nil
	}

	w := doJSON(env.router, http.MethodPost, "/api/v1/manager/requirements", map[string]any{
		"jobTitle":         "Platform Engineer",
		"yearsExperience":  4,
		"numberOfOpenings": 2,
		"numberOfRounds":   3,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if env.approvals.CreateRequirementCalls != 1 {
		t.Errorf("expected one create call, got %d", env.approvals.CreateRequirementCalls)
	}
	reqs := env.stores.Manager.Requirements()
	if len(reqs) != 1 || reqs[0].RequirementID != 44 {
		t.Errorf("unexpected requirements after submit: %+v", reqs)
	}
}

func TestManagerRequirements_ForbiddenForOtherRoles(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)

	w := doJSON(env.router, http.MethodGet, "/api/v1/manager/requirements", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

func TestLogout_ClearsSessionAndStores(t *testing.T) {
	env := setupTestRouter(t)
	env.loginAs(t, domain.RoleCandidate)
	env.jobs.ListOpenFunc = func(ctx context.Context) ([]domain.Job, error) {
		return []domain.Job{{JobID: 1}}, nil
	}
	env.stores.Candidate.RefreshJobs(context.Background())

	w := doJSON(env.router, http.MethodDelete, "/api/v1/session", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if env.stores.Auth.Authenticated() {
		t.Error("session must be gone after logout")
	}
	if len(env.stores.Candidate.Jobs()) != 0 {
		t.Error("stores must be emptied on logout")
	}

	// Role routes reject immediately once the session is gone.
	w = doJSON(env.router, http.MethodGet, "/api/v1/candidate/jobs", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 after logout, got %d", w.Code)
	}
}
