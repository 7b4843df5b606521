package attendance

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/migrations"
	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db, logging.Nop()))
	return db
}

func seed(t *testing.T, r *SQLiteRepository, employeeID string, ts models.Timestamp, typ models.RecordType) int64 {
	t.Helper()
	name := "Employee " + employeeID
	id, err := r.Insert(context.Background(), &models.AttendanceRecord{
		EmployeeID:   employeeID,
		EmployeeName: &name,
		Timestamp:    ts,
		Type:         typ,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	})
	require.NoError(t, err)
	return id
}

func ids(records []models.AttendanceRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestInsertAndGetByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id := seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "E1", got.EmployeeID)
	assert.Equal(t, "Employee E1", got.DisplayName())
	assert.Equal(t, models.Timestamp("2026-10-19 08:00:00"), got.Timestamp)
	assert.Equal(t, models.RecordEntry, got.Type)
	assert.Nil(t, got.Notes)
	assert.Equal(t, got.Timestamp, got.CreatedAt)

	_, err = r.GetByID(ctx, 9999)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	a := seed(t, r, "E1", "2026-10-18 08:00:00", models.RecordEntry)
	b := seed(t, r, "E1", "2026-10-19 17:00:00", models.RecordExit)
	c := seed(t, r, "E2", "2026-10-19 08:00:00", models.RecordEntry)

	got, err := r.List(context.Background(), models.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{b, c, a}, ids(got))
}

func TestList_SameDayRangeIgnoresTimeOfDay(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	seed(t, r, "E1", "2026-10-18 23:59:59", models.RecordEntry)
	early := seed(t, r, "E1", "2026-10-19 00:00:00", models.RecordEntry)
	late := seed(t, r, "E1", "2026-10-19 23:59:59", models.RecordExit)
	seed(t, r, "E1", "2026-10-20 00:00:00", models.RecordEntry)

	day := "2026-10-19"
	got, err := r.List(context.Background(), models.RecordFilter{StartDate: &day, EndDate: &day})
	require.NoError(t, err)
	assert.Equal(t, []int64{late, early}, ids(got))
}

func TestList_CombinedFilters(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)
	want := seed(t, r, "E1", "2026-10-19 17:00:00", models.RecordExit)
	seed(t, r, "E2", "2026-10-19 17:30:00", models.RecordExit)
	seed(t, r, "E1", "2026-09-30 17:00:00", models.RecordExit)

	start := "2026-10-01"
	emp := "E1"
	typ := models.RecordExit
	got, err := r.List(context.Background(), models.RecordFilter{StartDate: &start, EmployeeID: &emp, Type: &typ})
	require.NoError(t, err)
	assert.Equal(t, []int64{want}, ids(got))
}

func TestList_EmptyResultIsNotNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	got, err := r.List(context.Background(), models.RecordFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id := seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)
	notes := "forgot badge"

	require.NoError(t, r.Update(ctx, id, models.RecordPatch{Notes: &notes}, "2026-10-19 12:00:00"))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "forgot badge", got.NotesText())
	assert.Equal(t, models.Timestamp("2026-10-19 08:00:00"), got.Timestamp)
	assert.Equal(t, models.RecordEntry, got.Type)
	assert.Equal(t, models.Timestamp("2026-10-19 08:00:00"), got.CreatedAt)
	assert.Equal(t, models.Timestamp("2026-10-19 12:00:00"), got.UpdatedAt)
}

func TestUpdate_Errors(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	notes := "x"

	err := r.Update(ctx, 1, models.RecordPatch{}, "2026-10-19 12:00:00")
	require.ErrorIs(t, err, common.ErrNoFieldsProvided)

	err = r.Update(ctx, 9999, models.RecordPatch{Notes: &notes}, "2026-10-19 12:00:00")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_SchemaRejectsUnknownType(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	id := seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)
	bogus := models.RecordType("lunch")

	err := r.Update(context.Background(), id, models.RecordPatch{Type: &bogus}, "2026-10-19 12:00:00")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id := seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)
	require.NoError(t, r.Delete(ctx, id))

	_, err := r.GetByID(ctx, id)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, id), common.ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, 9999), common.ErrNotFound)
}

func TestDailyAggregates(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()
	day := "2026-10-19"

	// E0 entered yesterday and never left: not present today
	seed(t, r, "E0", "2026-10-18 22:00:00", models.RecordEntry)
	// E1 in and out
	seed(t, r, "E1", "2026-10-19 08:00:00", models.RecordEntry)
	seed(t, r, "E1", "2026-10-19 12:00:00", models.RecordExit)
	// E2 in twice, out once
	seed(t, r, "E2", "2026-10-19 08:05:00", models.RecordEntry)
	seed(t, r, "E2", "2026-10-19 08:06:00", models.RecordEntry)
	seed(t, r, "E2", "2026-10-19 13:00:00", models.RecordExit)
	// E3 in only
	seed(t, r, "E3", "2026-10-19 14:00:00", models.RecordEntry)
	// E4 in, out, in again: the exit still counts
	seed(t, r, "E4", "2026-10-19 07:00:00", models.RecordEntry)
	seed(t, r, "E4", "2026-10-19 07:30:00", models.RecordExit)
	last := seed(t, r, "E4", "2026-10-19 15:00:00", models.RecordEntry)

	entries, err := r.CountByType(ctx, day, models.RecordEntry)
	require.NoError(t, err)
	assert.Equal(t, int64(6), entries)

	exits, err := r.CountByType(ctx, day, models.RecordExit)
	require.NoError(t, err)
	assert.Equal(t, int64(3), exits)

	present, err := r.PresentEmployeeIDs(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []string{"E3"}, present)

	rec, err := r.Last(ctx, day)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, last, rec.ID)
}

func TestLast_NoActivity(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	rec, err := r.Last(context.Background(), "2026-10-19")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRepository_DBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.List(ctx, models.RecordFilter{})
	require.ErrorContains(t, err, "failed to select records")

	err = r.Delete(ctx, 1)
	require.ErrorContains(t, err, "failed to delete record 1")

	_, err = r.CountByType(ctx, "2026-10-19", models.RecordEntry)
	require.ErrorContains(t, err, "failed to count entry records")
}
