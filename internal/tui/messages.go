package tui

import "github.com/MKhiriev/go-auth-form/internal/authform"

// submitDoneMsg carries the result of a remote call started by enter.
type submitDoneMsg struct {
	outcome authform.Outcome
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearNoticeMsg struct{}
