package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/dmitrijs2005/attendance/internal/repositories/attendance"
	"github.com/dmitrijs2005/attendance/internal/repositories/employees"
)

const (
	MsgEntryRegistered = "Entry registered"
	MsgExitRegistered  = "Exit registered"
)

// AttendanceService records entry/exit events and answers queries over them.
type AttendanceService interface {
	// CheckIn records an entry. A nil name is resolved from the employee
	// register, falling back to "Employee <id>".
	CheckIn(ctx context.Context, employeeID string, employeeName *string) (*models.AttendanceRecord, error)
	CheckOut(ctx context.Context, employeeID string, employeeName *string) (*models.AttendanceRecord, error)

	ListRecords(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error)
	ExportRecords(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error)
	DailyStats(ctx context.Context) (*models.DailyStats, error)
	PresentEmployees(ctx context.Context) ([]string, error)

	UpdateRecord(ctx context.Context, id int64, p models.RecordPatch) error
	DeleteRecord(ctx context.Context, id int64) error
}

type attendanceService struct {
	conn   *dbx.Conn
	logger logging.Logger
	now    Clock
}

func NewAttendanceService(conn *dbx.Conn, logger logging.Logger, now Clock) AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &attendanceService{conn: conn, logger: logger, now: now}
}

// FallbackName labels events of ids missing from the employee register.
func FallbackName(employeeID string) string {
	return "Employee " + employeeID
}

func (s *attendanceService) CheckIn(ctx context.Context, employeeID string, employeeName *string) (*models.AttendanceRecord, error) {
	return s.register(ctx, employeeID, employeeName, models.RecordEntry)
}

func (s *attendanceService) CheckOut(ctx context.Context, employeeID string, employeeName *string) (*models.AttendanceRecord, error) {
	return s.register(ctx, employeeID, employeeName, models.RecordExit)
}

// register does not look at earlier events: repeated entries without an exit
// are accepted and handled by the presence computation.
func (s *attendanceService) register(ctx context.Context, employeeID string, employeeName *string, t models.RecordType) (*models.AttendanceRecord, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, fmt.Errorf("%w: employee id is empty", common.ErrInvalidInput)
	}

	var rec *models.AttendanceRecord
	err := run(ctx, s.conn, s.logger, "register "+string(t), func(ctx context.Context, tx dbx.DBTX) error {
		name, err := s.resolveName(ctx, tx, employeeID, employeeName)
		if err != nil {
			return err
		}

		now := models.NewTimestamp(s.now())
		rec = &models.AttendanceRecord{
			EmployeeID:   employeeID,
			EmployeeName: &name,
			Timestamp:    now,
			Type:         t,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		rec.ID, err = attendance.NewSQLiteRepository(tx).Insert(ctx, rec)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "attendance registered", "type", t, "employee_id", employeeID, "record_id", rec.ID)
	return rec, nil
}

func (s *attendanceService) resolveName(ctx context.Context, tx dbx.DBTX, employeeID string, employeeName *string) (string, error) {
	if employeeName != nil {
		return *employeeName, nil
	}

	e, err := employees.NewSQLiteRepository(tx).GetByID(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return FallbackName(employeeID), nil
		}
		return "", err
	}
	return e.Name, nil
}

func (s *attendanceService) ListRecords(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error) {
	return s.query(ctx, "list records", f)
}

// ExportRecords returns exactly what ListRecords returns for the same filter.
func (s *attendanceService) ExportRecords(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error) {
	records, err := s.query(ctx, "export records", f)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "records exported", "count", len(records))
	return records, nil
}

func (s *attendanceService) query(ctx context.Context, op string, f models.RecordFilter) ([]models.AttendanceRecord, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	var records []models.AttendanceRecord
	err := run(ctx, s.conn, s.logger, op, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		records, err = attendance.NewSQLiteRepository(tx).List(ctx, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func validateFilter(f models.RecordFilter) error {
	for _, d := range []*string{f.StartDate, f.EndDate} {
		if d == nil {
			continue
		}
		if _, err := time.Parse(models.DateLayout, *d); err != nil {
			return fmt.Errorf("%w: date %q must look like YYYY-MM-DD", common.ErrInvalidInput, *d)
		}
	}
	if f.Type != nil && !f.Type.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidRecordType, *f.Type)
	}
	return nil
}

// DailyStats is recomputed from the log on every call, scoped to today's
// local date.
func (s *attendanceService) DailyStats(ctx context.Context) (*models.DailyStats, error) {
	day := s.now().Format(models.DateLayout)

	stats := &models.DailyStats{}
	err := run(ctx, s.conn, s.logger, "daily stats", func(ctx context.Context, tx dbx.DBTX) error {
		repo := attendance.NewSQLiteRepository(tx)

		var err error
		if stats.TotalEntries, err = repo.CountByType(ctx, day, models.RecordEntry); err != nil {
			return err
		}
		if stats.TotalExits, err = repo.CountByType(ctx, day, models.RecordExit); err != nil {
			return err
		}

		present, err := repo.PresentEmployeeIDs(ctx, day)
		if err != nil {
			return err
		}
		stats.UniqueEmployeesPresent = int64(len(present))

		stats.LastActivity, err = repo.Last(ctx, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// PresentEmployees lists the ids counted in DailyStats.UniqueEmployeesPresent.
func (s *attendanceService) PresentEmployees(ctx context.Context) ([]string, error) {
	day := s.now().Format(models.DateLayout)

	var ids []string
	err := run(ctx, s.conn, s.logger, "present employees", func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		ids, err = attendance.NewSQLiteRepository(tx).PresentEmployeeIDs(ctx, day)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *attendanceService) UpdateRecord(ctx context.Context, id int64, p models.RecordPatch) error {
	if p.Empty() {
		return common.ErrNoFieldsProvided
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidRecordType, *p.Type)
	}
	if p.Timestamp != nil {
		ts, err := models.ParseTimestamp(*p.Timestamp)
		if err != nil {
			return err
		}
		normalized := string(ts)
		p.Timestamp = &normalized
	}

	err := run(ctx, s.conn, s.logger, "update record", func(ctx context.Context, tx dbx.DBTX) error {
		return attendance.NewSQLiteRepository(tx).Update(ctx, id, p, models.NewTimestamp(s.now()))
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "record updated", "record_id", id)
	return nil
}

func (s *attendanceService) DeleteRecord(ctx context.Context, id int64) error {
	err := run(ctx, s.conn, s.logger, "delete record", func(ctx context.Context, tx dbx.DBTX) error {
		return attendance.NewSQLiteRepository(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "record deleted", "record_id", id)
	return nil
}
