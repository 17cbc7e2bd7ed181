// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/store"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
)

const logoutTimeout = 5 * time.Second

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	logger   *logger.Logger
	now      func() time.Time

	mu      sync.RWMutex
	session models.Session
}

// NewClientAuthService restores the persisted session (if any) into memory so
// that IsAuthenticated stays a local, synchronous check. A read failure is
// logged and treated as "no session".
func NewClientAuthService(ctx context.Context, sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	s := &clientAuthService{
		adapter:  serverAdapter,
		sessions: sessions,
		logger:   log,
		now:      time.Now,
	}

	session, err := sessions.LoadSession(log.WithContext(ctx))
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		log.Debug().Msg("no persisted session")
	case err != nil:
		log.Err(err).Msg("failed to restore persisted session")
	default:
		s.session = session
		log.Debug().Str("email", session.Email).Time("issued_at", session.IssuedAt).Msg("session restored")
	}

	return s
}

// IsAuthenticated reports whether a token is cached and, when the token is a
// JWT carrying "exp", whether it has not expired yet. Opaque tokens are
// trusted until the server rejects them.
func (a *clientAuthService) IsAuthenticated() bool {
	a.mu.RLock()
	token := a.session.Token
	a.mu.RUnlock()

	if token == "" {
		return false
	}

	exp, ok, err := utils.TokenExpiry(token)
	if err != nil || !ok {
		return true
	}

	if !a.now().Before(exp) {
		a.logger.Info().Time("expired_at", exp).Msg("persisted token is expired")
		return false
	}
	return true
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	ctx = a.logger.WithContext(ctx)

	resp, err := a.adapter.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Warn().Err(err).Str("email", email).Msg("login rejected")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	a.remember(ctx, email, resp.Token)
	return resp, nil
}

func (a *clientAuthService) Register(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	ctx = a.logger.WithContext(ctx)

	resp, err := a.adapter.Register(ctx, models.Credentials{Name: name, Email: email, Password: password})
	if err != nil {
		a.logger.Warn().Err(err).Str("email", email).Msg("registration rejected")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	a.remember(ctx, email, resp.Token)
	return resp, nil
}

// Logout forgets the cached session and removes the persisted row. A storage
// failure is logged only: the in-memory session is gone either way.
func (a *clientAuthService) Logout() {
	a.mu.Lock()
	a.session = models.Session{}
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
	defer cancel()

	if err := a.sessions.DeleteSession(a.logger.WithContext(ctx)); err != nil {
		a.logger.Err(err).Msg("failed to delete persisted session")
		return
	}
	a.logger.Info().Msg("logged out")
}

func (a *clientAuthService) Session() models.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

// remember caches and persists a freshly issued token. Write failures do not
// turn a successful login into a failed one.
//
// Without a token the cache holds only the new account's email and the
// persisted row is removed.
func (a *clientAuthService) remember(ctx context.Context, email, token string) {
	session := models.Session{
		Token:    token,
		Email:    strings.TrimSpace(email),
		IssuedAt: a.now().UTC(),
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()

	if token == "" {
		a.logger.Info().Str("email", session.Email).Msg("server issued no token, session not persisted")
		if err := a.sessions.DeleteSession(ctx); err != nil {
			a.logger.Err(err).Msg("failed to delete stale persisted session")
		}
		return
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).Msg("failed to persist session")
	}
}
