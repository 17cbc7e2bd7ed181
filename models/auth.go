// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the JSON body sent to the remote auth API.
//
// Name is only populated for registration; login requests omit it.
type Credentials struct {
	// Name is the display name of a new account.
	Name string `json:"name,omitempty"`

	// Email identifies the account on both endpoints.
	Email string `json:"email"`

	// Password is the plain-text password. It is never persisted locally.
	Password string `json:"password"`
}

// AuthResponse is the successful response of the login and register
// endpoints. Both fields are optional.
type AuthResponse struct {
	// Message is a human-readable confirmation supplied by the server.
	Message string `json:"message,omitempty"`

	// Token is the session token issued by the server. It may also arrive in
	// the Authorization response header.
	Token string `json:"token,omitempty"`
}

// ErrorResponse is the JSON payload the auth API returns alongside a non-2xx
// status code.
type ErrorResponse struct {
	Error string `json:"error"`
}
