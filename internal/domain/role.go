package domain

import (
	"fmt"
	"strings"
)

// Role identifies which part of the recruitment workflow a user belongs to.
// The numeric codes are the backend's canonical encoding; legacy responses
// sometimes carry the label or a quoted numeric string instead, so all
// decoding goes through ParseRole.
type Role int

const (
	RoleManager Role = iota
	RoleHR
	RoleInterviewer
	RoleCandidate
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	return r >= RoleManager && r <= RoleCandidate
}

// String returns the role label used on the wire and in logs.
func (r Role) String() string {
	switch r {
	case RoleManager:
		return "Manager"
	case RoleHR:
		return "HR"
	case RoleInterviewer:
		return "Interviewer"
	case RoleCandidate:
		return "Candidate"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RoleFromCode decodes the backend's numeric role code.
func RoleFromCode(code int) (Role, error) {
	r := Role(code)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrUnknownRole, code)
	}
	return r, nil
}

// ParseRole is the single total decoder for every role representation the
// backend has been observed to emit: numeric codes ("0".."3") and labels
// ("HR", "candidate"). Anything else is an error, never a guessed role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "manager":
		return RoleManager, nil
	case "1", "hr":
		return RoleHR, nil
	case "2", "interviewer":
		return RoleInterviewer, nil
	case "3", "candidate":
		return RoleCandidate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}
