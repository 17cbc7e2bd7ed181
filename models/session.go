package models

import "time"

// Session is the locally persisted result of a successful login or
// registration.
type Session struct {
	Token    string
	Email    string
	IssuedAt time.Time
}

// IsZero reports whether s holds no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}
