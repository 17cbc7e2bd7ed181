// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import "strings"

// RequiredFields lists the fields that must be non-empty in mode, in the
// order they are rendered.
func RequiredFields(mode Mode) []Field {
	if mode == ModeRegister {
		return []Field{FieldName, FieldEmail, FieldPassword}
	}
	return []Field{FieldEmail, FieldPassword}
}

// Validate checks the required fields of a submission and returns a
// [*RequiredFieldError] for the first empty one.
//
// Only presence is checked; email format and password rules are left to
// the remote API. Surrounding whitespace is ignored for the email only, a
// password of spaces is a password.
func Validate(sub Submission) error {
	for _, field := range RequiredFields(sub.Mode) {
		value, _ := sub.Form.Get(field)
		if field == FieldEmail {
			value = strings.TrimSpace(value)
		}
		if value == "" {
			return &RequiredFieldError{Field: field}
		}
	}
	return nil
}
