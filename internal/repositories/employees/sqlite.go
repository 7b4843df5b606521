package employees

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/models"
)

const table = "employees"

var employeeColumns = []string{"id", "name", "active", "created_at", "updated_at"}

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

func scanEmployee(s scanner) (models.Employee, error) {
	var e models.Employee
	var active sql.NullBool
	err := s.Scan(&e.ID, &e.Name, &active, &e.CreatedAt, &e.UpdatedAt)
	// a NULL flag predates the column default and counts as active
	e.Active = !active.Valid || active.Bool
	return e, err
}

func (r *SQLiteRepository) List(ctx context.Context, activeOnly bool) ([]models.Employee, error) {
	q := sq.Select(employeeColumns...).From(table)
	if activeOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	query, args, err := q.OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select employees: %w", err)
	}
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	query, args, err := sq.Select(employeeColumns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %q: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %q: %w", id, err)
	}
	return &e, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Active, e.CreatedAt, e.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("employee %q: %w", e.ID, common.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, p models.EmployeePatch, updatedAt models.Timestamp) error {
	if p.Empty() {
		return common.ErrNoFieldsProvided
	}

	q := sq.Update(table)
	if p.Name != nil {
		q = q.Set("name", *p.Name)
	}
	if p.Active != nil {
		q = q.Set("active", *p.Active)
	}
	query, args, err := q.Set("updated_at", updatedAt).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee %q: %w", id, err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee %q: %w", id, err)
	}
	return expectOne(res, id)
}

func expectOne(res sql.Result, id string) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return fmt.Errorf("employee %q: %w", id, common.ErrNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
