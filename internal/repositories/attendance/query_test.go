package attendance

import (
	"testing"

	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSelectRecords_NoFilters(t *testing.T) {
	query, args, err := SelectRecords(models.RecordFilter{}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, employee_id, employee_name, timestamp, type, notes, created_at, updated_at FROM attendance WHERE 1 = 1 ORDER BY timestamp DESC, id DESC",
		query)
	assert.Empty(t, args)
}

func TestSelectRecords_FixedPredicateOrder(t *testing.T) {
	f := models.RecordFilter{
		Type:       ptr(models.RecordExit),
		EmployeeID: ptr("E1"),
		EndDate:    ptr("2026-10-31"),
		StartDate:  ptr("2026-10-01"),
	}

	query, args, err := SelectRecords(f).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query,
		"WHERE 1 = 1 AND date(timestamp) >= date(?) AND date(timestamp) <= date(?) AND employee_id = ? AND type = ?")
	assert.Equal(t, []any{"2026-10-01", "2026-10-31", "E1", "exit"}, args)
}

func TestSelectRecords_OnlySuppliedFiltersParticipate(t *testing.T) {
	query, args, err := SelectRecords(models.RecordFilter{EmployeeID: ptr("E7")}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE 1 = 1 AND employee_id = ? ORDER BY")
	assert.NotContains(t, query, "date(timestamp)")
	assert.Equal(t, []any{"E7"}, args)
}

func TestSelectRecords_ValuesAreNeverInlined(t *testing.T) {
	hostile := "E1' OR '1'='1"
	query, args, err := SelectRecords(models.RecordFilter{EmployeeID: &hostile}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "OR '1'='1")
	assert.Equal(t, []any{hostile}, args)
}

func TestUpdateRecord_SetsOnlySuppliedFields(t *testing.T) {
	q, ok := updateRecord(5, models.RecordPatch{Notes: ptr("late")}, "2026-10-19 09:00:00")
	require.True(t, ok)

	query, args, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE attendance SET notes = ?, updated_at = ? WHERE id = ?", query)
	assert.Equal(t, []any{"late", models.Timestamp("2026-10-19 09:00:00"), int64(5)}, args)
}

func TestUpdateRecord_AllFieldsInColumnOrder(t *testing.T) {
	p := models.RecordPatch{
		Notes:     ptr("fixed"),
		Type:      ptr(models.RecordEntry),
		Timestamp: ptr("2026-10-19 08:00:00"),
	}
	q, ok := updateRecord(1, p, "2026-10-19 09:00:00")
	require.True(t, ok)

	query, _, err := q.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE attendance SET timestamp = ?, type = ?, notes = ?, updated_at = ? WHERE id = ?", query)
}

func TestUpdateRecord_EmptyPatch(t *testing.T) {
	_, ok := updateRecord(1, models.RecordPatch{}, "2026-10-19 09:00:00")
	assert.False(t, ok)
}
