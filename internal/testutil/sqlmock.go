package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/stretchr/testify/require"
)

// NewMockClient returns a postgres client backed by sqlmock. Expectations are
// checked when the test ends.
func NewMockClient(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return wrap(t, db, mock), mock
}

// NewMockClientWithPings is NewMockClient with ping monitoring: every Ping
// must be matched by ExpectPing.
func NewMockClientWithPings(t *testing.T) (*postgres.Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)
	return wrap(t, db, mock), mock
}

func wrap(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock) *postgres.Client {
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return postgres.NewFromDB(sqlx.NewDb(db, "postgres"))
}
