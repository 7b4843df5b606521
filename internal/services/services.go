package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/dbx"
	"github.com/dmitrijs2005/attendance/internal/logging"
)

// Clock returns the current local time.
type Clock func() time.Time

// Ledger bundles the three services sharing one connection.
type Ledger struct {
	Attendance AttendanceService
	Employees  EmployeeService
	Admin      AdminService
}

// NewLedger wires all services to conn. A nil clock means time.Now.
func NewLedger(conn *dbx.Conn, logger logging.Logger, now Clock) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		Attendance: NewAttendanceService(conn, logger, now),
		Employees:  NewEmployeeService(conn, logger, now),
		Admin:      NewAdminService(conn, logger),
	}
}

// run executes fn as one locked unit of work and maps raw failures to
// *common.StorageError.
func run(ctx context.Context, conn *dbx.Conn, logger logging.Logger, op string, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	err := conn.WithTx(ctx, fn)
	if err == nil {
		return nil
	}

	err = common.Storage(op, err)
	if errors.Is(err, common.ErrStorage) {
		logger.Error(ctx, "storage failure", "op", op, "error", err)
	}
	return err
}
