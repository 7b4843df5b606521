package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (models.AttendanceRecord, error) {
	var r models.AttendanceRecord
	var typ sql.NullString
	err := s.Scan(&r.ID, &r.EmployeeID, &r.EmployeeName, &r.Timestamp, &typ, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
	r.Type = models.RecordType(typ.String)
	return r, err
}

// Insert stores a new event. Timestamps come from the caller so that a single
// clock drives the whole operation.
func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.AttendanceRecord) (int64, error) {
	query, args, err := sq.Insert(table).
		Columns("employee_id", "employee_name", "timestamp", "type", "notes", "created_at", "updated_at").
		Values(rec.EmployeeID, rec.EmployeeName, rec.Timestamp, string(rec.Type), rec.Notes, rec.CreatedAt, rec.UpdatedAt).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

// List runs SelectRecords for f.
func (r *SQLiteRepository) List(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error) {
	query, args, err := SelectRecords(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	result := make([]models.AttendanceRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	query, args, err := sq.Select(recordColumns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return &rec, nil
}

// Update changes only the fields present in p. It expects exactly one row to
// be affected.
func (r *SQLiteRepository) Update(ctx context.Context, id int64, p models.RecordPatch, updatedAt models.Timestamp) error {
	q, ok := updateRecord(id, p, updatedAt)
	if !ok {
		return common.ErrNoFieldsProvided
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update record %d: %w", id, err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, err)
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id int64) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("record %d: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *SQLiteRepository) CountByType(ctx context.Context, day string, t models.RecordType) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE type = ? AND date(timestamp) = date(?)`,
		string(t), day).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", t, err)
	}
	return n, nil
}

// PresentEmployeeIDs only looks at events dated day: an entry left open the
// day before does not carry over, and any exit that day clears the employee.
func (r *SQLiteRepository) PresentEmployeeIDs(ctx context.Context, day string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT employee_id FROM attendance
		WHERE type = 'entry' AND date(timestamp) = date(?)
		  AND employee_id NOT IN (
		      SELECT employee_id FROM attendance
		      WHERE type = 'exit' AND date(timestamp) = date(?))
		ORDER BY employee_id`, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to select present employees: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate present employees: %w", err)
	}
	return ids, nil
}

func (r *SQLiteRepository) Last(ctx context.Context, day string) (*models.AttendanceRecord, error) {
	query, args, err := SelectRecords(models.RecordFilter{StartDate: &day, EndDate: &day}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last activity: %w", err)
	}
	return &rec, nil
}
