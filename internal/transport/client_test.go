package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tokens := NewTokenStore()
	tokens.Set("secret-token")
	client := NewClient(srv.URL+"/", tokens, time.Second, zap.NewNop())

	var out map[string]bool
	if err := client.Get(context.Background(), "/candidate/Jobs", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if !out["ok"] {
		t.Error("response body not decoded")
	}
}

func TestClient_NoTokenWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewTokenStore(), time.Second, zap.NewNop())
	var out []int
	if err := client.Get(context.Background(), "/candidate/Jobs", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_APIErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"duplicate_application","message":"already applied"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, time.Second, zap.NewNop())
	err := client.Post(context.Background(), "/candidate/Applications", map[string]int{"jobId": 3}, nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Code != "duplicate_application" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "already applied" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClient_TimeoutSurfacesErrTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, 20*time.Millisecond, zap.NewNop())
	err := client.Get(context.Background(), "/admin/Users", nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestResourceLabel(t *testing.T) {
	cases := map[string]string{
		"/admin/Applications/42":              "admin/Applications",
		"/admin/JobRequirements/7/status?s=1": "admin/JobRequirements",
		"/candidate/Jobs":                     "candidate/Jobs",
		"/Auth/login":                         "Auth/login",
	}
	for in, want := range cases {
		if got := resourceLabel(in); got != want {
			t.Errorf("resourceLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
