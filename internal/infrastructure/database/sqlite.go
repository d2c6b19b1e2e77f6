package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteDB holds separate writer and reader handles on one SQLite database.
// The writer is limited to a single connection to avoid "database is locked" errors.
type SQLiteDB struct {
	Writer *sql.DB
	Reader *sql.DB
}

// SQLiteFileDSN builds a DSN for an on-disk database with WAL mode, a busy
// timeout and foreign keys enabled.
func SQLiteFileDSN(path string) string {
	return fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
		path,
	)
}

// SQLiteMemoryDSN builds a DSN for a named shared in-memory database.
// Every handle opened with the same name sees the same data.
func SQLiteMemoryDSN(name string) string {
	return fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		name,
	)
}

// NewSQLite opens the writer and reader connections for dsn and pings both.
func NewSQLite(ctx context.Context, dsn string) (*SQLiteDB, error) {
	writer, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open writer: %w", err)
	}
	writer.SetMaxOpenConns(1)

	if err := writer.PingContext(ctx); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("ping writer: %w", err)
	}

	reader, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open reader: %w", err)
	}
	reader.SetMaxOpenConns(4)

	if err := reader.PingContext(ctx); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, fmt.Errorf("ping reader: %w", err)
	}

	return &SQLiteDB{Writer: writer, Reader: reader}, nil
}

// Ping checks the reader connection.
func (db *SQLiteDB) Ping(ctx context.Context) error {
	return db.Reader.PingContext(ctx)
}

// Close closes both connections and returns the first error encountered.
func (db *SQLiteDB) Close() error {
	var firstErr error

	if err := db.Reader.Close(); err != nil {
		firstErr = fmt.Errorf("close reader: %w", err)
	}

	if err := db.Writer.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close writer: %w", err)
	}

	return firstErr
}
