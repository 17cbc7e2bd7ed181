// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitInFlight is returned by BeginSubmit while a previous
	// submission has not finished yet.
	ErrSubmitInFlight = errors.New("submission already in flight")

	// ErrUnknownField is returned by EditField for a field the form does
	// not have.
	ErrUnknownField = errors.New("unknown form field")
)

// RequiredFieldError reports an empty required field. It is returned by
// BeginSubmit instead of starting a submission.
type RequiredFieldError struct {
	Field Field
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("field %q is required", string(e.Field))
}
