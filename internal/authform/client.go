// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authform

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=client.go -destination=../mock/auth_client_mock.go -package=mock

// AuthClient is the remote authentication collaborator of the [Controller].
type AuthClient interface {
	// IsAuthenticated reports whether a usable session is persisted locally.
	// It must not perform network I/O.
	IsAuthenticated() bool

	// Login authenticates an existing account. Failures are returned as
	// errors, preferably [*models.RequestFailure] carrying the server text.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register creates an account. Same failure contract as Login.
	Register(ctx context.Context, name, email, password string) (models.AuthResponse, error)

	// Logout forgets the persisted session. It never fails from the caller's
	// point of view.
	Logout()
}
