package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/attendance/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printRecords(w io.Writer, records []models.AttendanceRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tNAME\tDATE\tTIME\tTYPE\tNOTES")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.EmployeeID, r.DisplayName(), r.Timestamp.Date(), r.Timestamp.Clock(), r.Type.Label(), r.NotesText())
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d record(s)\n", len(records))
}

func printEmployees(w io.Writer, list []models.Employee) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No employees")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS")
	for _, e := range list {
		status := "active"
		if !e.Active {
			status = "inactive"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, status)
	}
	_ = tw.Flush()
}

func printEmployee(w io.Writer, e *models.Employee) {
	status := "active"
	if !e.Active {
		status = "inactive"
	}
	fmt.Fprintf(w, "ID:       %s\n", e.ID)
	fmt.Fprintf(w, "Name:     %s\n", e.Name)
	fmt.Fprintf(w, "Status:   %s\n", status)
	fmt.Fprintf(w, "Created:  %s\n", e.CreatedAt)
	fmt.Fprintf(w, "Updated:  %s\n", e.UpdatedAt)
}

func printStats(w io.Writer, s *models.DailyStats) {
	fmt.Fprintf(w, "Entries today:   %d\n", s.TotalEntries)
	fmt.Fprintf(w, "Exits today:     %d\n", s.TotalExits)
	fmt.Fprintf(w, "Present now:     %d\n", s.UniqueEmployeesPresent)
	if s.LastActivity == nil {
		fmt.Fprintln(w, "Last activity:   none")
		return
	}
	fmt.Fprintf(w, "Last activity:   %s %s at %s\n",
		s.LastActivity.DisplayName(), s.LastActivity.Type.Label(), s.LastActivity.Timestamp.Clock())
}
