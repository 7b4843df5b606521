package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/models"
)

func oneID(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected exactly one employee id", common.ErrInvalidInput)
	}
	return args[0], nil
}

// Employees lists active employees, or all of them with -all.
func (a *App) Employees(ctx context.Context, args []string) error {
	activeOnly := true
	for _, arg := range args {
		switch arg {
		case "-all", "--all", "-a":
			activeOnly = false
		default:
			return fmt.Errorf("%w: unknown option %q", common.ErrInvalidInput, arg)
		}
	}

	list, err := a.ledger.Employees.List(ctx, activeOnly)
	if err != nil {
		return err
	}
	printEmployees(a.out, list)
	return nil
}

// ShowEmployee prints one employee record.
func (a *App) ShowEmployee(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}

	e, err := a.ledger.Employees.Get(ctx, id)
	if err != nil {
		return err
	}
	printEmployee(a.out, e)
	return nil
}

func (a *App) AddEmployee(ctx context.Context, _ []string) error {
	id, err := GetSimpleText(a.reader, "Employee ID", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	e, err := a.ledger.Employees.Create(ctx, id, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Employee %s (%s) added\n", e.ID, e.Name)
	return nil
}

func (a *App) RenameEmployee(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}

	if err := a.ledger.Employees.Update(ctx, id, models.EmployeePatch{Name: &name}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Employee %s renamed\n", id)
	return nil
}

func (a *App) ActivateEmployee(ctx context.Context, args []string) error {
	return a.setActive(ctx, args, true)
}

func (a *App) DeactivateEmployee(ctx context.Context, args []string) error {
	return a.setActive(ctx, args, false)
}

func (a *App) setActive(ctx context.Context, args []string, active bool) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}
	if err := a.ledger.Employees.Update(ctx, id, models.EmployeePatch{Active: &active}); err != nil {
		return err
	}

	state := "activated"
	if !active {
		state = "deactivated"
	}
	fmt.Fprintf(a.out, "Employee %s %s\n", id, state)
	return nil
}

// RemoveEmployee deletes the employee; recorded events stay.
func (a *App) RemoveEmployee(ctx context.Context, args []string) error {
	id, err := oneID(args)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete employee %s? Attendance history is kept", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.ledger.Employees.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Employee %s deleted\n", id)
	return nil
}
