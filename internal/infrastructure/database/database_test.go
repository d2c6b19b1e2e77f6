package database_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comment-threads/internal/infrastructure/database"
)

func TestPoolConfig_URL(t *testing.T) {
	cfg := database.PoolConfig{
		Host:     "db.internal",
		Port:     6543,
		User:     "svc",
		Password: "p@ss word",
		Database: "comment_threads",
		SSLMode:  "require",
	}

	u, err := url.Parse(cfg.URL())
	require.NoError(t, err)

	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "db.internal:6543", u.Host)
	assert.Equal(t, "/comment_threads", u.Path)
	assert.Equal(t, "svc", u.User.Username())
	password, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss word", password)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}

func TestNewSQLite_RunsMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, database.SQLiteMemoryDSN(url.PathEscape(t.Name())))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.RunSQLiteMigrations(db.Writer))
	// Second run is a no-op.
	require.NoError(t, database.RunSQLiteMigrations(db.Writer))

	for _, table := range []string{"authors", "comments"} {
		var name string
		err := db.Reader.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	assert.NoError(t, db.Ping(ctx))
}
