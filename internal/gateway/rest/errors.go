package rest

import (
	"errors"

	"github.com/recruitdesk/recruitdesk/internal/transport"
)

// statusOf extracts the HTTP status from a backend error, or 0 when the
// failure never reached the backend (network error, timeout).
func statusOf(err error) int {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
