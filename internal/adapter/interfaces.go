// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// authentication API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Every failed call is returned as a [*models.RequestFailure]. Its Err field
// holds one of the sentinel errors from errors.go when the server answered
// with a known status, so callers can still use [errors.Is] (e.g.
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the auth API.
type ServerAdapter interface {
	// Login authenticates an existing account with email and password.
	// On success it returns the server message and the issued session token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Register creates a new account from name, email and password.
	// The returned token may be empty if the server does not log the new
	// account in.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
}
