package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
	}{
		{"auth response", models.AuthResponse{Message: "ok", Token: "tok"}, http.StatusOK},
		{"created without token", models.AuthResponse{Message: "created"}, http.StatusCreated},
		{"error body", models.ErrorResponse{Error: "Неверный email или пароль"}, http.StatusUnauthorized},
		{"null", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			want, _ := json.Marshal(tt.data)
			assert.Equal(t, len(want), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, string(want), w.Body.String())
		})
	}
}

func TestWriteJSON_OmitsEmptyToken(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.AuthResponse{Message: "created"}, http.StatusCreated)
	require.NoError(t, err)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}
