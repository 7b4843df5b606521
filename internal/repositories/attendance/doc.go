// Package attendance provides the persistence layer for entry/exit events.
//
// # Filtering
//
// ApplyFilter is the single place where the optional record filters turn into
// SQL. Both the record listing and the export path select through
// SelectRecords, so what an operator sees and what gets exported always obey
// the same predicate and the same ordering (newest first).
//
// Every filter value is bound as a statement argument; none is ever spliced
// into the query text.
//
// # Daily aggregates
//
// CountByType, PresentEmployeeIDs and Last compute the per-day figures from
// scratch on each call. The day is passed in by the caller so the figures
// stay consistent with a List over the same date.
//
// Typical Usage
//
//	repo := attendance.NewSQLiteRepository(tx)
//	id, _ := repo.Insert(ctx, rec)
//	list, _ := repo.List(ctx, models.RecordFilter{EmployeeID: &emp})
//	_ = repo.Delete(ctx, id)
package attendance
