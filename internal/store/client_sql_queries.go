// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-form/models"
)

const (
	sessionsTable = "sessions"
	// the table holds at most one row
	sessionRowID = 1
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildUpsertSessionQuery(s models.Session) (string, []any, error) {
	return sqlite.
		Insert(sessionsTable).
		Columns("id", "token", "email", "issued_at").
		Values(sessionRowID, s.Token, s.Email, s.IssuedAt.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			token     = excluded.token,
			email     = excluded.email,
			issued_at = excluded.issued_at`).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sqlite.
		Select("token", "email", "issued_at").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
