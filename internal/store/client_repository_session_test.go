package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSessionRepository(&DB{DB: db, logger: logger.Nop()}), mock
}

// ── SaveSession ───────────────────────────────────────────────────────────────

func TestSaveSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sessionRowID, "tok", "a@b.com", issued).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.Session{Token: "tok", Email: "a@b.com", IssuedAt: issued})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveSession(context.Background(), models.Session{Token: "tok"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── LoadSession ───────────────────────────────────────────────────────────────

func TestLoadSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"token", "email", "issued_at"}).
		AddRow("tok", "a@b.com", issued)
	mock.ExpectQuery("SELECT token, email, issued_at FROM sessions").
		WithArgs(sessionRowID).
		WillReturnRows(rows)

	got, err := repo.LoadSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tok", Email: "a@b.com", IssuedAt: issued}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSession_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadSession(context.Background())

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLoadSession_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WillReturnError(errors.New("no such table: sessions"))

	_, err := repo.LoadSession(context.Background())

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

// ── DeleteSession ─────────────────────────────────────────────────────────────

func TestDeleteSession_Success(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSession(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, repo.DeleteSession(context.Background()), ErrExecutingStatement)
}
