// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RequestFailure is the single error kind produced by calls to the remote
// auth API. Network failures, validation failures and server errors all
// collapse into it and differ only in the optional server-supplied Message.
type RequestFailure struct {
	// StatusCode is the HTTP status of the response; zero when no response
	// was received.
	StatusCode int

	// Message is the "error" text extracted from the response payload, if any.
	Message string

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (f *RequestFailure) Error() string {
	switch {
	case f.Message != "" && f.StatusCode != 0:
		return fmt.Sprintf("http %d: %s", f.StatusCode, f.Message)
	case f.Message != "":
		return f.Message
	case f.Err != nil:
		return fmt.Sprintf("request failed: %v", f.Err)
	default:
		return fmt.Sprintf("http %d", f.StatusCode)
	}
}

// Unwrap returns the underlying transport error so callers can match it with
// errors.Is (e.g. context.DeadlineExceeded).
func (f *RequestFailure) Unwrap() error {
	return f.Err
}
