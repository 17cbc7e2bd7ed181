// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/utils"
	"github.com/MKhiriev/go-auth-form/models"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger).WithTimeout(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Msg("http server adapter created")
	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs email and password to
// POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	credentials.Name = ""
	return h.post(ctx, loginPath, credentials)
}

// Register implements [ServerAdapter]. It POSTs name, email and password to
// POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.post(ctx, registerPath, credentials)
}

// post sends credentials to path and decodes an [models.AuthResponse].
// A bearer token in the Authorization response header takes precedence over
// a "token" field in the body.
func (h *httpServerAdapter) post(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, &models.RequestFailure{Err: fmt.Errorf("%s request: %w", path, err)}
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			h.logger.Warn().Err(err).Str("path", path).Msg("ignoring malformed authorization header")
		} else {
			result.Token = token
		}
	}

	result.Message = strings.TrimSpace(result.Message)
	result.Token = strings.TrimSpace(result.Token)
	return result, nil
}
