package utils

import "github.com/google/uuid"

// RequestIDHeader is the header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a time-ordered UUIDv7 so ids sort with the request
// log. A random v4 is returned when the v7 clock read fails.
func NewRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
