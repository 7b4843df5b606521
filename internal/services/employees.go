package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/dmitrijs2005/attendance/internal/repositories/employees"
)

// EmployeeService manages the employee register.
type EmployeeService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, id, name string) (*models.Employee, error)
	Update(ctx context.Context, id string, p models.EmployeePatch) error
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	conn   *dbx.Conn
	logger logging.Logger
	now    Clock
}

func NewEmployeeService(conn *dbx.Conn, logger logging.Logger, now Clock) EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &employeeService{conn: conn, logger: logger, now: now}
}

func (s *employeeService) List(ctx context.Context, activeOnly bool) ([]models.Employee, error) {
	var list []models.Employee
	err := run(ctx, s.conn, s.logger, "list employees", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		list, err = employees.NewSQLiteRepository(tx).List(ctx, activeOnly)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	var e *models.Employee
	err := run(ctx, s.conn, s.logger, "get employee", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		e, err = employees.NewSQLiteRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create registers an active employee. Both fields are trimmed and must be
// non-empty.
func (s *employeeService) Create(ctx context.Context, id, name string) (*models.Employee, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: employee id and name are required", common.ErrInvalidInput)
	}

	now := models.NewTimestamp(s.now())
	e := &models.Employee{ID: id, Name: name, Active: true, CreatedAt: now, UpdatedAt: now}

	err := run(ctx, s.conn, s.logger, "create employee", func(ctx context.Context, tx dbx.DBTX) error {
		return employees.NewSQLiteRepository(tx).Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "employee created", "employee_id", id)
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, id string, p models.EmployeePatch) error {
	if p.Empty() {
		return common.ErrNoFieldsProvided
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return fmt.Errorf("%w: employee name is empty", common.ErrInvalidInput)
		}
		p.Name = &name
	}

	err := run(ctx, s.conn, s.logger, "update employee", func(ctx context.Context, tx dbx.DBTX) error {
		return employees.NewSQLiteRepository(tx).Update(ctx, id, p, models.NewTimestamp(s.now()))
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "employee updated", "employee_id", id)
	return nil
}

// Delete removes the employee; attendance records keep their stored name.
func (s *employeeService) Delete(ctx context.Context, id string) error {
	err := run(ctx, s.conn, s.logger, "delete employee", func(ctx context.Context, tx dbx.DBTX) error {
		return employees.NewSQLiteRepository(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "employee deleted", "employee_id", id)
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}
