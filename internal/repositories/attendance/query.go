package attendance

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dmitrijs2005/attendance/internal/models"
)

const table = "attendance"

var recordColumns = []string{
	"id", "employee_id", "employee_name", "timestamp", "type", "notes", "created_at", "updated_at",
}

// ApplyFilter ANDs the supplied filters onto q in a fixed order: start date,
// end date, employee, type. Dates compare on the date component only and are
// inclusive on both ends.
func ApplyFilter(q sq.SelectBuilder, f models.RecordFilter) sq.SelectBuilder {
	if f.StartDate != nil {
		q = q.Where("date(timestamp) >= date(?)", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date(timestamp) <= date(?)", *f.EndDate)
	}
	if f.EmployeeID != nil {
		q = q.Where(sq.Eq{"employee_id": *f.EmployeeID})
	}
	if f.Type != nil {
		q = q.Where(sq.Eq{"type": string(*f.Type)})
	}
	return q
}

// SelectRecords is the one query behind both listing and export.
func SelectRecords(f models.RecordFilter) sq.SelectBuilder {
	q := sq.Select(recordColumns...).
		From(table).
		Where("1 = 1")

	return ApplyFilter(q, f).OrderBy("timestamp DESC", "id DESC")
}

// updateRecord folds the supplied fields of p, in column order, into an
// UPDATE. ok is false when p carries nothing to change.
func updateRecord(id int64, p models.RecordPatch, updatedAt models.Timestamp) (q sq.UpdateBuilder, ok bool) {
	q = sq.Update(table)
	if p.Timestamp != nil {
		q = q.Set("timestamp", *p.Timestamp)
		ok = true
	}
	if p.Type != nil {
		q = q.Set("type", string(*p.Type))
		ok = true
	}
	if p.Notes != nil {
		q = q.Set("notes", *p.Notes)
		ok = true
	}
	return q.Set("updated_at", updatedAt).Where(sq.Eq{"id": id}), ok
}
