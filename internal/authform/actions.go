// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

// Action is a single state transition request handled by [Reduce].
//
// The set of actions is closed: only the types declared in this file
// implement it.
type Action interface {
	isAction()
}

// Initialized records the result of the startup session check.
type Initialized struct {
	Authenticated bool
}

// FieldEdited records a user edit of one form field.
type FieldEdited struct {
	Field Field
	Value string
}

// ModeToggled switches between login and registration.
type ModeToggled struct{}

// SubmitStarted marks the beginning of a remote submission.
type SubmitStarted struct{}

// SubmitSucceeded carries the server-supplied confirmation text (may be empty).
type SubmitSucceeded struct {
	Message string
}

// SubmitFailed carries the error returned by the remote call.
type SubmitFailed struct {
	Err error
}

// LoggedOut records an explicit logout.
type LoggedOut struct{}

func (Initialized) isAction()     {}
func (FieldEdited) isAction()     {}
func (ModeToggled) isAction()     {}
func (SubmitStarted) isAction()   {}
func (SubmitSucceeded) isAction() {}
func (SubmitFailed) isAction()    {}
func (LoggedOut) isAction()       {}
