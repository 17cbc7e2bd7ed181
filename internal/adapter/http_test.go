// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func decodeCredentials(t *testing.T, r *http.Request) models.Credentials {
	t.Helper()
	var c models.Credentials
	require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
	return c
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		got := decodeCredentials(t, r)
		assert.Equal(t, models.Credentials{Email: "a@b.com", Password: "x"}, got)

		_, _ = utils.WriteJSON(w, models.AuthResponse{Message: "Login exitoso", Token: "tok-1"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Name: "dropped", Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", got.Message)
	assert.Equal(t, "tok-1", got.Token)
}

func TestLogin_BearerHeaderWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		_, _ = utils.WriteJSON(w, models.AuthResponse{Token: "body-token"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "header-token", got.Token)
	assert.Empty(t, got.Message)
}

func TestLogin_MalformedBearerHeaderIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "garbage")
		_, _ = utils.WriteJSON(w, models.AuthResponse{Token: "body-token"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "body-token", got.Token)
}

func TestLogin_UnauthorizedWithErrorText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid credentials"}, http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var failure *models.RequestFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusUnauthorized, failure.StatusCode)
	assert.Equal(t, "Invalid credentials", failure.Message)
}

func TestLogin_PlainTextBodyNotExposed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("panic: runtime error at handler.go:42"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	var failure *models.RequestFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, failure.Message)
}

func TestLogin_ServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})

	var failure *models.RequestFailure
	require.ErrorAs(t, err, &failure)
	assert.Zero(t, failure.StatusCode)
	assert.Empty(t, failure.Message)
	assert.NotNil(t, failure.Err)
}

func TestLogin_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(ctx, models.Credentials{Email: "a@b.com", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		got := decodeCredentials(t, r)
		assert.Equal(t, models.Credentials{Name: "Ann", Email: "ann@b.com", Password: "secret"}, got)

		_, _ = utils.WriteJSON(w, models.AuthResponse{Message: "Usuario registrado exitosamente", Token: "tok"}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Name: "Ann", Email: "ann@b.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Usuario registrado exitosamente", got.Message)
	assert.Equal(t, "tok", got.Token)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "El usuario ya existe"}, http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Name: "Ann", Email: "ann@b.com", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var failure *models.RequestFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "El usuario ya existe", failure.Message)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://auth.example.com/", want: "https://auth.example.com"},
		{in: " http://127.0.0.1:9000 ", want: "http://127.0.0.1:9000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHTTPError_StatusSentinels(t *testing.T) {
	codes := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnprocessableEntity: ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusTooManyRequests:     ErrTooManyRequests,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusTeapot:              ErrUnexpectedStatus,
	}

	for code, want := range codes {
		assert.ErrorIs(t, statusError(code), want, "status %d", code)
	}
}

func TestExtractErrorText(t *testing.T) {
	assert.Equal(t, "bad", extractErrorText([]byte(`{"error":" bad "}`)))
	assert.Empty(t, extractErrorText([]byte(`{"message":"x"}`)))
	assert.Empty(t, extractErrorText([]byte(`not json`)))
	assert.Empty(t, extractErrorText(nil))
}
