// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

// Reduce applies action to s and returns the resulting state. It is pure:
// no I/O, no clock, no shared state.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case Initialized:
		s.Session = sessionOf(a.Authenticated)

	case FieldEdited:
		if _, ok := s.Form.Get(a.Field); !ok {
			return s
		}
		s.Form = s.Form.With(a.Field, a.Value)
		s.Status = NoStatus

	case ModeToggled:
		s.Mode = s.Mode.Toggle()
		s.Form = FormData{}
		s.Status = NoStatus

	case SubmitStarted:
		s.Loading = true
		s.Status = NoStatus

	case SubmitSucceeded:
		s.Loading = false
		s.Status = SuccessStatus(successText(a.Message))
		s.Session = SessionAuthenticated
		s.Form = FormData{}

	case SubmitFailed:
		s.Loading = false
		s.Status = ErrorStatus(FailureText(a.Err))

	case LoggedOut:
		s.Session = SessionAnonymous
		s.Status = SuccessStatus(MsgSessionClosed)
	}

	return s
}

// Replay folds actions over s in order.
func Replay(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func sessionOf(authenticated bool) Session {
	if authenticated {
		return SessionAuthenticated
	}
	return SessionAnonymous
}
