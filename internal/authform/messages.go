// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-auth-form/models"
)

const (
	// MsgOperationSucceeded is shown after a successful submission when the
	// server did not supply its own message.
	MsgOperationSucceeded = "Операция выполнена успешно"

	// MsgRequestFailed is shown when a submission fails and the failure
	// carries no server-supplied error text.
	MsgRequestFailed = "Ошибка при обработке запроса"

	// MsgSessionClosed is shown after an explicit logout.
	MsgSessionClosed = "Сессия завершена"
)

// FailureText returns the text to display for a failed submission: the
// server-provided error of a [models.RequestFailure] if there is one,
// otherwise [MsgRequestFailed].
func FailureText(err error) string {
	var failure *models.RequestFailure
	if errors.As(err, &failure) {
		if msg := strings.TrimSpace(failure.Message); msg != "" {
			return msg
		}
	}
	return MsgRequestFailed
}

func successText(message string) string {
	if msg := strings.TrimSpace(message); msg != "" {
		return msg
	}
	return MsgOperationSucceeded
}
