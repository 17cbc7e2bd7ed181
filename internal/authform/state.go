// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

// Mode selects which remote operation a submission invokes and which fields
// are required.
type Mode int

const (
	// ModeLogin requires email and password and invokes AuthClient.Login.
	ModeLogin Mode = iota
	// ModeRegister additionally requires a name and invokes AuthClient.Register.
	ModeRegister
)

// String returns a short identifier of the mode for logs.
func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeLogin {
		return ModeRegister
	}
	return ModeLogin
}

// Session is the client-side authentication flag.
type Session int

const (
	SessionAnonymous Session = iota
	SessionAuthenticated
)

func (s Session) String() string {
	if s == SessionAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Field names one input of the form.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// FormData holds the raw values typed by the user.
type FormData struct {
	Name     string
	Email    string
	Password string
}

// IsEmpty reports whether every field is blank.
func (f FormData) IsEmpty() bool {
	return f == FormData{}
}

// Get returns the value of field and whether the field is known.
func (f FormData) Get(field Field) (string, bool) {
	switch field {
	case FieldName:
		return f.Name, true
	case FieldEmail:
		return f.Email, true
	case FieldPassword:
		return f.Password, true
	}
	return "", false
}

// With returns a copy of f with field set to value. Unknown fields leave the
// copy unchanged.
func (f FormData) With(field Field, value string) FormData {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	}
	return f
}

// StatusKind discriminates the status message shown under the form.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusError
	StatusSuccess
)

// Status is the message shown to the user. Exactly one kind is active at a
// time; StatusNone always carries an empty text.
type Status struct {
	Kind StatusKind
	Text string
}

// NoStatus is the cleared status.
var NoStatus = Status{}

// ErrorStatus builds a StatusError message.
func ErrorStatus(text string) Status {
	return Status{Kind: StatusError, Text: text}
}

// SuccessStatus builds a StatusSuccess message.
func SuccessStatus(text string) Status {
	return Status{Kind: StatusSuccess, Text: text}
}

// IsError reports whether s is an error message.
func (s Status) IsError() bool { return s.Kind == StatusError }

// IsSuccess reports whether s is a success message.
func (s Status) IsSuccess() bool { return s.Kind == StatusSuccess }

// State is the complete, immutable state of the form. Transitions never
// mutate a State in place; [Reduce] returns a new value.
type State struct {
	Mode    Mode
	Form    FormData
	Session Session
	Loading bool
	Status  Status
}

// InitialState is the state before Initialize: anonymous, login mode, idle.
func InitialState() State {
	return State{Mode: ModeLogin, Session: SessionAnonymous}
}

// Authenticated reports whether the session flag is set.
func (s State) Authenticated() bool {
	return s.Session == SessionAuthenticated
}
