package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/attendance/internal/common"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/dmitrijs2005/attendance/internal/services"
	"github.com/dmitrijs2005/attendance/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	saved [][]models.AttendanceRecord
}

func (f *fakeExporter) Save(_ context.Context, records []models.AttendanceRecord) (string, error) {
	f.saved = append(f.saved, records)
	return "/tmp/Attendance_2026-10-19.xlsx", nil
}

type testApp struct {
	*App
	out      *bytes.Buffer
	exporter *fakeExporter
	ledger   *services.Ledger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	stubTerminal(t, false, "", nil)

	path := filepath.Join(t.TempDir(), "attendance.db")
	conn, err := storage.InitDatabase(context.Background(), path, time.Second, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
	clock := func() time.Time {
		now = now.Add(time.Minute)
		return now
	}

	ledger := services.NewLedger(conn, logging.Nop(), clock)
	out := &bytes.Buffer{}
	exp := &fakeExporter{}
	app := NewApp(ledger, exp, logging.Nop(), strings.NewReader(""), out)
	return &testApp{App: app, out: out, exporter: exp, ledger: ledger}
}

// feed replaces the prompt input with lines.
func (ta *testApp) feed(lines ...string) {
	ta.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestApp_CheckInOut(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	_, err := ta.ledger.Employees.Create(ctx, "E1", "Alice")
	require.NoError(t, err)

	require.NoError(t, ta.CheckIn(ctx, []string{"E1"}))
	assert.Contains(t, ta.out.String(), "Entry registered: Alice (E1) at 08:02:00")

	ta.feed("E2")
	require.NoError(t, ta.CheckOut(ctx, nil))
	assert.Contains(t, ta.out.String(), "Exit registered: Employee E2 (E2)")

	ta.out.Reset()
	require.NoError(t, ta.Stats(ctx, nil))
	assert.Contains(t, ta.out.String(), "Entries today:   1")
	assert.Contains(t, ta.out.String(), "Exits today:     1")
	assert.Contains(t, ta.out.String(), "Present now:     1")
	assert.Contains(t, ta.out.String(), "Last activity:   Employee E2 Exit")

	ta.out.Reset()
	require.NoError(t, ta.Present(ctx, nil))
	assert.Equal(t, "E1\n", ta.out.String())
}

func TestApp_Login(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.feed("1234")
	require.NoError(t, ta.Login(ctx, nil))
	assert.False(t, ta.isAdmin())
	assert.Contains(t, ta.out.String(), "Wrong passphrase")

	ta.feed("0824")
	require.NoError(t, ta.Login(ctx, nil))
	assert.True(t, ta.isAdmin())
	assert.Equal(t, "attendance (admin)> ", ta.prompt())

	require.NoError(t, ta.Logout(ctx, nil))
	assert.False(t, ta.isAdmin())
}

func TestApp_RecordsAndExport(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	for _, id := range []string{"E1", "E2"} {
		require.NoError(t, ta.CheckIn(ctx, []string{id}))
	}
	require.NoError(t, ta.CheckOut(ctx, []string{"E1"}))

	ta.out.Reset()
	require.NoError(t, ta.Records(ctx, []string{"-employee", "E1"}))
	listing := ta.out.String()
	assert.Contains(t, listing, "2 record(s)")
	assert.NotContains(t, listing, "E2")
	assert.Less(t, strings.Index(listing, "Exit"), strings.Index(listing, "Entry"), "newest first")

	require.NoError(t, ta.Export(ctx, []string{"-type", "entry"}))
	require.Len(t, ta.exporter.saved, 1)
	assert.Len(t, ta.exporter.saved[0], 2)
	assert.Contains(t, ta.out.String(), "Exported 2 record(s) to /tmp/Attendance_2026-10-19.xlsx")

	err := ta.Records(ctx, []string{"-from", "19.10.2026"})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestApp_EditAndDelete(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, ta.CheckIn(ctx, []string{"E1"}))
	records, err := ta.ledger.Attendance.ListRecords(ctx, models.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	id := records[0].ID
	idArg := []string{strconv.FormatInt(id, 10)}

	ta.feed("", "exit", "forgot badge")
	require.NoError(t, ta.Edit(ctx, idArg))

	records, err = ta.ledger.Attendance.ListRecords(ctx, models.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.RecordExit, records[0].Type)
	assert.Equal(t, "forgot badge", records[0].NotesText())
	assert.Equal(t, models.Timestamp("2026-10-19 08:01:00"), records[0].Timestamp)

	ta.feed("", "", "")
	require.ErrorIs(t, ta.Edit(ctx, idArg), common.ErrNoFieldsProvided)

	ta.feed("", "", "-")
	require.NoError(t, ta.Edit(ctx, idArg))
	records, err = ta.ledger.Attendance.ListRecords(ctx, models.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, "", records[0].NotesText())

	ta.feed("n")
	require.NoError(t, ta.Delete(ctx, idArg))
	assert.Contains(t, ta.out.String(), "Cancelled")

	ta.feed("y")
	require.NoError(t, ta.Delete(ctx, idArg))

	ta.feed("y")
	require.ErrorIs(t, ta.Delete(ctx, idArg), common.ErrNotFound)
}

func TestApp_EmployeeManagement(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.feed("E1", "Alice")
	require.NoError(t, ta.AddEmployee(ctx, nil))
	ta.feed("E1", "Bob")
	require.ErrorIs(t, ta.AddEmployee(ctx, nil), common.ErrDuplicateID)

	ta.feed("Alicia")
	require.NoError(t, ta.RenameEmployee(ctx, []string{"E1"}))
	require.NoError(t, ta.DeactivateEmployee(ctx, []string{"E1"}))

	ta.out.Reset()
	require.NoError(t, ta.Employees(ctx, nil))
	assert.Contains(t, ta.out.String(), "No employees")

	ta.out.Reset()
	require.NoError(t, ta.Employees(ctx, []string{"-all"}))
	assert.Contains(t, ta.out.String(), "Alicia")
	assert.Contains(t, ta.out.String(), "inactive")

	ta.out.Reset()
	require.NoError(t, ta.ShowEmployee(ctx, []string{"E1"}))
	assert.Contains(t, ta.out.String(), "Name:     Alicia")
	assert.Contains(t, ta.out.String(), "Status:   inactive")
	require.ErrorIs(t, ta.ShowEmployee(ctx, []string{"E9"}), common.ErrNotFound)
	require.ErrorIs(t, ta.ShowEmployee(ctx, nil), common.ErrInvalidInput)

	require.NoError(t, ta.ActivateEmployee(ctx, []string{"E1"}))
	require.ErrorIs(t, ta.ActivateEmployee(ctx, []string{"E9"}), common.ErrNotFound)
	require.ErrorIs(t, ta.Employees(ctx, []string{"-bogus"}), common.ErrInvalidInput)

	ta.feed("yes")
	require.NoError(t, ta.RemoveEmployee(ctx, []string{"E1"}))
	_, err := ta.ledger.Employees.Get(ctx, "E1")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestApp_RunSession(t *testing.T) {
	ta := newTestApp(t)

	ta.feed("in E1", "records", "admin", "0824", "records", "exit")
	ta.Run(context.Background())

	assert.True(t, ta.isAdmin())
	assert.Contains(t, ta.out.String(), "Entry registered: Employee E1 (E1)")
	assert.Contains(t, ta.out.String(), "1 record(s)")

	// The whole session, prompts included, goes to the app's writer.
	assert.Contains(t, ta.out.String(), "Attendance terminal (type 'help' for commands)")
	assert.Contains(t, ta.out.String(), "Admin mode required: type 'admin' first")
	assert.Contains(t, ta.out.String(), "attendance (admin)> ")
	assert.Contains(t, ta.out.String(), "Bye!")
}
