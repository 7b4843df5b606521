package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/dmitrijs2005/attendance/internal/services"
)

// employeeID takes the id from args or asks for it.
func (a *App) employeeID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) CheckIn(ctx context.Context, args []string) error {
	id, err := a.employeeID(args, "Employee ID")
	if err != nil {
		return err
	}

	rec, err := a.ledger.Attendance.CheckIn(ctx, id, nil)
	if err != nil {
		return err
	}
	a.printRegistered(services.MsgEntryRegistered, rec)
	return nil
}

func (a *App) CheckOut(ctx context.Context, args []string) error {
	id, err := a.employeeID(args, "Employee ID")
	if err != nil {
		return err
	}

	rec, err := a.ledger.Attendance.CheckOut(ctx, id, nil)
	if err != nil {
		return err
	}
	a.printRegistered(services.MsgExitRegistered, rec)
	return nil
}

func (a *App) printRegistered(msg string, rec *models.AttendanceRecord) {
	fmt.Fprintf(a.out, "%s: %s (%s) at %s\n", msg, rec.DisplayName(), rec.EmployeeID, rec.Timestamp.Clock())
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	s, err := a.ledger.Attendance.DailyStats(ctx)
	if err != nil {
		return err
	}
	printStats(a.out, s)
	return nil
}

func (a *App) Present(ctx context.Context, _ []string) error {
	ids, err := a.ledger.Attendance.PresentEmployees(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "Nobody is present")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

// Login switches to admin mode after the passphrase is verified.
func (a *App) Login(ctx context.Context, _ []string) error {
	if a.admin {
		fmt.Fprintln(a.out, "Already in admin mode")
		return nil
	}

	pw, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	ok, err := a.ledger.Admin.VerifyAdminPassword(ctx, pw)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Wrong passphrase")
		return nil
	}

	a.admin = true
	a.logger.Info(ctx, "admin mode entered")
	fmt.Fprintln(a.out, "Admin mode enabled (type 'help' for commands)")
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.admin = false
	a.logger.Info(ctx, "admin mode left")
	fmt.Fprintln(a.out, "Back to kiosk mode")
	return nil
}
