package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationNoTxContext(upAttendanceColumns, downAttendanceColumns)
}

// Databases created by early releases lack these columns. SQLite refuses a
// non-constant default on ADD COLUMN, so the timestamps are backfilled from
// the event time instead.
var attendanceColumns = []struct {
	name string
	decl string
}{
	{"notes", "TEXT"},
	{"created_at", "DATETIME"},
	{"updated_at", "DATETIME"},
}

func upAttendanceColumns(ctx context.Context, db *sql.DB) error {
	for _, col := range attendanceColumns {
		stmt := fmt.Sprintf("ALTER TABLE attendance ADD COLUMN %s %s", col.name, col.decl)
		if _, err := db.ExecContext(ctx, stmt); err != nil && !isDuplicateColumn(err) {
			return fmt.Errorf("failed to add attendance.%s: %w", col.name, err)
		}
	}

	_, err := db.ExecContext(ctx, `
		UPDATE attendance
		SET created_at = COALESCE(created_at, timestamp),
		    updated_at = COALESCE(updated_at, timestamp)
		WHERE created_at IS NULL OR updated_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to backfill attendance timestamps: %w", err)
	}
	return nil
}

func downAttendanceColumns(ctx context.Context, db *sql.DB) error {
	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column")
}
