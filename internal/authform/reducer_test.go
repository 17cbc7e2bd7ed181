// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
)

func TestReduce_FieldEdited_LastWriteWins(t *testing.T) {
	s := Replay(InitialState(),
		FieldEdited{Field: FieldEmail, Value: "a"},
		FieldEdited{Field: FieldPassword, Value: "p1"},
		FieldEdited{Field: FieldEmail, Value: "a@b.com"},
		FieldEdited{Field: FieldName, Value: "Ann"},
		FieldEdited{Field: FieldPassword, Value: "p2"},
	)

	assert.Equal(t, FormData{Name: "Ann", Email: "a@b.com", Password: "p2"}, s.Form)
}

func TestReduce_FieldEdited_ClearsStatus(t *testing.T) {
	for _, st := range []Status{ErrorStatus("boom"), SuccessStatus("ok"), NoStatus} {
		s := InitialState()
		s.Status = st

		s = Reduce(s, FieldEdited{Field: FieldEmail, Value: "x"})
		assert.Equal(t, NoStatus, s.Status)
	}
}

func TestReduce_FieldEdited_UnknownFieldIgnored(t *testing.T) {
	s := InitialState()
	s.Status = ErrorStatus("keep")

	got := Reduce(s, FieldEdited{Field: "phone", Value: "123"})
	assert.Equal(t, s, got)
}

func TestReduce_ModeToggled_ResetsFormAndStatus(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Mode
	}{
		{
			name:  "login to register",
			state: State{Mode: ModeLogin, Form: FormData{Email: "e", Password: "p"}, Status: ErrorStatus("bad")},
			want:  ModeRegister,
		},
		{
			name:  "register to login",
			state: State{Mode: ModeRegister, Form: FormData{Name: "n", Email: "e"}, Status: SuccessStatus("ok")},
			want:  ModeLogin,
		},
		{
			name:  "authenticated and loading",
			state: State{Mode: ModeLogin, Session: SessionAuthenticated, Loading: true, Form: FormData{Password: "p"}},
			want:  ModeRegister,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.state, ModeToggled{})
			assert.Equal(t, tt.want, got.Mode)
			assert.True(t, got.Form.IsEmpty())
			assert.Equal(t, NoStatus, got.Status)
			assert.Equal(t, tt.state.Session, got.Session)
			assert.Equal(t, tt.state.Loading, got.Loading)
		})
	}
}

func TestReduce_SubmitSucceeded(t *testing.T) {
	start := Replay(InitialState(),
		FieldEdited{Field: FieldEmail, Value: "a@b.com"},
		FieldEdited{Field: FieldPassword, Value: "x"},
		SubmitStarted{},
	)
	assert.True(t, start.Loading)

	t.Run("server message", func(t *testing.T) {
		got := Reduce(start, SubmitSucceeded{Message: "Welcome back"})
		assert.False(t, got.Loading)
		assert.Equal(t, SuccessStatus("Welcome back"), got.Status)
		assert.Equal(t, SessionAuthenticated, got.Session)
		assert.True(t, got.Form.IsEmpty())
	})

	t.Run("default message", func(t *testing.T) {
		got := Reduce(start, SubmitSucceeded{Message: "  "})
		assert.Equal(t, SuccessStatus(MsgOperationSucceeded), got.Status)
	})
}

func TestReduce_SubmitFailed(t *testing.T) {
	start := Replay(InitialState(),
		FieldEdited{Field: FieldEmail, Value: "a@b.com"},
		FieldEdited{Field: FieldPassword, Value: "x"},
		SubmitStarted{},
	)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "server text", err: &models.RequestFailure{StatusCode: 401, Message: "Invalid credentials"}, want: "Invalid credentials"},
		{name: "wrapped server text", err: errors.Join(errors.New("ctx"), &models.RequestFailure{Message: "Email taken"}), want: "Email taken"},
		{name: "failure without text", err: &models.RequestFailure{StatusCode: 500}, want: MsgRequestFailed},
		{name: "transport error", err: &models.RequestFailure{Err: errors.New("dial tcp: refused")}, want: MsgRequestFailed},
		{name: "foreign error", err: errors.New("whatever"), want: MsgRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(start, SubmitFailed{Err: tt.err})
			assert.False(t, got.Loading)
			assert.Equal(t, ErrorStatus(tt.want), got.Status)
			assert.Equal(t, SessionAnonymous, got.Session)
			assert.Equal(t, start.Form, got.Form)
		})
	}
}

func TestReduce_LoggedOut(t *testing.T) {
	for _, session := range []Session{SessionAnonymous, SessionAuthenticated} {
		s := InitialState()
		s.Session = session
		s.Status = ErrorStatus("old")

		got := Reduce(s, LoggedOut{})
		assert.Equal(t, SessionAnonymous, got.Session)
		assert.Equal(t, SuccessStatus(MsgSessionClosed), got.Status)
	}
}

func TestReduce_Initialized(t *testing.T) {
	assert.Equal(t, SessionAuthenticated, Reduce(InitialState(), Initialized{Authenticated: true}).Session)
	assert.Equal(t, SessionAnonymous, Reduce(InitialState(), Initialized{Authenticated: false}).Session)
}

func TestReduce_StatusExclusive(t *testing.T) {
	// every reachable status has a consistent kind/text pair
	seq := []Action{
		Initialized{},
		FieldEdited{Field: FieldEmail, Value: "e"},
		SubmitStarted{},
		SubmitFailed{Err: errors.New("x")},
		FieldEdited{Field: FieldPassword, Value: "p"},
		SubmitStarted{},
		SubmitSucceeded{},
		LoggedOut{},
		ModeToggled{},
	}

	s := InitialState()
	for _, a := range seq {
		s = Reduce(s, a)
		if s.Status.Kind == StatusNone {
			assert.Empty(t, s.Status.Text)
		} else {
			assert.NotEmpty(t, s.Status.Text)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sub     Submission
		missing Field
	}{
		{name: "login ok", sub: Submission{Mode: ModeLogin, Form: FormData{Email: "a@b.com", Password: "x"}}},
		{name: "login ignores name", sub: Submission{Mode: ModeLogin, Form: FormData{Email: "a@b.com", Password: "x"}}},
		{name: "login no email", sub: Submission{Mode: ModeLogin, Form: FormData{Password: "x"}}, missing: FieldEmail},
		{name: "login blank email", sub: Submission{Mode: ModeLogin, Form: FormData{Email: "  ", Password: "x"}}, missing: FieldEmail},
		{name: "login no password", sub: Submission{Mode: ModeLogin, Form: FormData{Email: "a@b.com"}}, missing: FieldPassword},
		{name: "register no name", sub: Submission{Mode: ModeRegister, Form: FormData{Email: "a@b.com", Password: "x"}}, missing: FieldName},
		{name: "register ok", sub: Submission{Mode: ModeRegister, Form: FormData{Name: "Ann", Email: "a@b.com", Password: "x"}}},
		{name: "spaces are a password", sub: Submission{Mode: ModeLogin, Form: FormData{Email: "a@b.com", Password: "   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sub)
			if tt.missing == "" {
				assert.NoError(t, err)
				return
			}
			var reqErr *RequiredFieldError
			if assert.ErrorAs(t, err, &reqErr) {
				assert.Equal(t, tt.missing, reqErr.Field)
			}
		})
	}
}
