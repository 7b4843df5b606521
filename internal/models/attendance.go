package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/attendance/internal/common"
)

// RecordType is the kind of an attendance event.
type RecordType string

const (
	RecordEntry RecordType = "entry"
	RecordExit  RecordType = "exit"
)

// Valid reports whether t is one of the two known event kinds.
func (t RecordType) Valid() bool {
	return t == RecordEntry || t == RecordExit
}

// ParseRecordType accepts "entry" or "exit" in any case.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidRecordType, s)
	}
	return t, nil
}

// Label is the human name of the event kind used in exports.
func (t RecordType) Label() string {
	switch t {
	case RecordEntry:
		return "Entry"
	case RecordExit:
		return "Exit"
	default:
		return string(t)
	}
}

// AttendanceRecord is a single entry or exit event.
//
// EmployeeID loosely references Employee.ID: records survive the deletion of
// the employee, and EmployeeName is a snapshot taken at event time that does
// not follow renames.
type AttendanceRecord struct {
	ID           int64      `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName *string    `json:"employee_name"`
	Timestamp    Timestamp  `json:"timestamp"`
	Type         RecordType `json:"type"`
	Notes        *string    `json:"notes"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    Timestamp  `json:"updated_at"`
}

// DisplayName returns the snapshot name or an empty string.
func (r AttendanceRecord) DisplayName() string {
	if r.EmployeeName == nil {
		return ""
	}
	return *r.EmployeeName
}

// NotesText returns the notes or an empty string.
func (r AttendanceRecord) NotesText() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

// RecordFilter selects attendance records. Nil fields do not participate.
// StartDate and EndDate are "YYYY-MM-DD" and inclusive.
type RecordFilter struct {
	StartDate  *string     `json:"start_date,omitempty"`
	EndDate    *string     `json:"end_date,omitempty"`
	EmployeeID *string     `json:"employee_id,omitempty"`
	Type       *RecordType `json:"type,omitempty"`
}

// RecordPatch lists the fields of a partial record update.
type RecordPatch struct {
	Timestamp *string
	Type      *RecordType
	Notes     *string
}

// Empty reports whether no field was supplied.
func (p RecordPatch) Empty() bool {
	return p.Timestamp == nil && p.Type == nil && p.Notes == nil
}

// DailyStats summarizes the events of the current local calendar date.
type DailyStats struct {
	TotalEntries           int64             `json:"total_entries"`
	TotalExits             int64             `json:"total_exits"`
	UniqueEmployeesPresent int64             `json:"unique_employees_present"`
	LastActivity           *AttendanceRecord `json:"last_activity"`
}
