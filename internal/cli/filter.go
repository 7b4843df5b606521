package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/models"
)

// parseFilter turns "records"/"export" arguments into a filter. Omitted
// flags leave the matching constraint unset; -date D is shorthand for
// -from D -to D.
func parseFilter(args []string) (models.RecordFilter, error) {
	var f models.RecordFilter
	var from, to, date, employee, typ string

	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&from, "from", "", "start date (YYYY-MM-DD), inclusive")
	fs.StringVar(&to, "to", "", "end date (YYYY-MM-DD), inclusive")
	fs.StringVar(&date, "date", "", "single date (YYYY-MM-DD)")
	fs.StringVar(&employee, "employee", "", "employee id")
	fs.StringVar(&typ, "type", "", "entry or exit")

	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("%w: unexpected argument %q", common.ErrInvalidInput, fs.Arg(0))
	}

	if date != "" {
		from, to = date, date
	}
	if from != "" {
		f.StartDate = &from
	}
	if to != "" {
		f.EndDate = &to
	}
	if employee != "" {
		f.EmployeeID = &employee
	}
	if typ != "" {
		t, err := models.ParseRecordType(typ)
		if err != nil {
			return f, err
		}
		f.Type = &t
	}
	return f, nil
}
