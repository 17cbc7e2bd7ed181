package store

import (
	"context"

	"github.com/MKhiriev/go-auth-form/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single local session of the client.
type SessionRepository interface {
	// SaveSession stores s, replacing any previous session.
	SaveSession(ctx context.Context, s models.Session) error
	// LoadSession returns the stored session or [ErrSessionNotFound].
	LoadSession(ctx context.Context) (models.Session, error)
	// DeleteSession removes the stored session. Deleting an absent session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
