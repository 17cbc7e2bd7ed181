package service

import (
	"github.com/MKhiriev/go-auth-form/internal/authform"
	"github.com/MKhiriev/go-auth-form/models"
)

// ClientAuthService is the concrete [authform.AuthClient] of the terminal
// client. Besides the form contract it exposes the cached session so the
// authenticated view can show who is signed in and copy the token.
type ClientAuthService interface {
	authform.AuthClient

	// Session returns a copy of the cached session; the zero value when
	// signed out.
	Session() models.Session
}
