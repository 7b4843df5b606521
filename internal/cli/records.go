package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/models"
)

func parseRecordID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one record id", common.ErrInvalidInput)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: record id %q", common.ErrInvalidInput, args[0])
	}
	return id, nil
}

func (a *App) Records(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return err
	}

	records, err := a.ledger.Attendance.ListRecords(ctx, f)
	if err != nil {
		return err
	}
	printRecords(a.out, records)
	return nil
}

func (a *App) Export(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		return err
	}

	records, err := a.ledger.Attendance.ExportRecords(ctx, f)
	if err != nil {
		return err
	}

	path, err := a.exporter.Save(ctx, records)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported %d record(s) to %s\n", len(records), path)
	return nil
}

// Edit asks for each editable field; empty answers leave the field alone
// and "-" as notes clears them.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseRecordID(args)
	if err != nil {
		return err
	}

	var p models.RecordPatch

	if p.Timestamp, err = GetOptionalText(a.reader, "Timestamp (YYYY-MM-DD HH:MM:SS)", a.out); err != nil {
		return err
	}

	typ, err := GetOptionalText(a.reader, "Type (entry/exit)", a.out)
	if err != nil {
		return err
	}
	if typ != nil {
		t, err := models.ParseRecordType(*typ)
		if err != nil {
			return err
		}
		p.Type = &t
	}

	if p.Notes, err = GetOptionalText(a.reader, "Notes ('-' to clear)", a.out); err != nil {
		return err
	}
	if p.Notes != nil && *p.Notes == "-" {
		empty := ""
		p.Notes = &empty
	}

	if err := a.ledger.Attendance.UpdateRecord(ctx, id, p); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Record %d updated\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseRecordID(args)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete record %d for good?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.ledger.Attendance.DeleteRecord(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Record %d deleted\n", id)
	return nil
}
