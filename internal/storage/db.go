// Package storage opens the ledger database file and brings its schema up to
// date before any store touches it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/migrations"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// DSN appends the busy timeout pragma understood by the sqlite driver.
func DSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		return path
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, busyTimeout.Milliseconds())
}

// InitDatabase opens the database at path, pins it to one connection and
// applies the schema. A failure here is fatal for the caller.
func InitDatabase(ctx context.Context, path string, busyTimeout time.Duration, logger logging.Logger) (*dbx.Conn, error) {
	db, err := sql.Open("sqlite", DSN(path, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	conn := dbx.NewConn(db)

	var version int64
	err = conn.WithDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if err := migrations.Up(ctx, db, logger); err != nil {
			return err
		}
		v, err := migrations.Version(ctx, db)
		version = v
		return err
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	logger.Info(ctx, "database ready", "path", path, "schema_version", version)
	return conn, nil
}
