package domain

import (
	"errors"
	"testing"
)

func TestParseRole_AllLegacyForms(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"0", RoleManager},
		{"1", RoleHR},
		{"2", RoleInterviewer},
		{"3", RoleCandidate},
		{"Manager", RoleManager},
		{"HR", RoleHR},
		{"hr", RoleHR},
		{"Interviewer", RoleInterviewer},
		{"Candidate", RoleCandidate},
		{"  candidate  ", RoleCandidate},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if err != nil {
			t.Errorf("ParseRole(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRole_Unknown(t *testing.T) {
	for _, in := range []string{"", "4", "-1", "Admin", "candidateX"} {
		if _, err := ParseRole(in); !errors.Is(err, ErrUnknownRole) {
			t.Errorf("ParseRole(%q): expected ErrUnknownRole, got %v", in, err)
		}
	}
}

func TestRoleFromCode(t *testing.T) {
	if r, err := RoleFromCode(1); err != nil || r != RoleHR {
		t.Errorf("RoleFromCode(1) = %v, %v; want RoleHR", r, err)
	}
	if _, err := RoleFromCode(7); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("RoleFromCode(7): expected ErrUnknownRole, got %v", err)
	}
}

func TestRoleString(t *testing.T) {
	if got := RoleHR.String(); got != "HR" {
		t.Errorf("RoleHR.String() = %q", got)
	}
	if got := RoleCandidate.String(); got != "Candidate" {
		t.Errorf("RoleCandidate.String() = %q", got)
	}
}
