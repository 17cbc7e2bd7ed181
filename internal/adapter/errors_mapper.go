// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-form/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [*models.RequestFailure].
// The user-facing Message is taken only from the "error" field of a JSON
// body; plain-text bodies are left out so raw server output never reaches
// the screen.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &models.RequestFailure{
		StatusCode: resp.StatusCode(),
		Message:    extractErrorText(resp.Body()),
		Err:        statusError(resp.StatusCode()),
	}
}

func statusError(code int) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

func extractErrorText(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}
