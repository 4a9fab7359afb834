package domain

import "errors"

var (
	// ErrNotFound is returned when a resource does not exist on the backend.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateApplication is returned when a candidate already has an
	// active application for the job. Uniqueness is enforced server-side;
	// the client only surfaces the rejection.
	ErrDuplicateApplication = errors.New("an application for this job already exists")

	// ErrUnauthorized is returned when credentials are missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrBackendUnavailable is returned when the recruitment backend cannot be reached.
	ErrBackendUnavailable = errors.New("recruitment backend unavailable")

	// ErrUnknownRole is returned when a role value cannot be decoded.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUnknownStatus is returned when a status value cannot be decoded.
	ErrUnknownStatus = errors.New("unknown status")
)
