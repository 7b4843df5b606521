package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/models"
	"github.com/dmitrijs2005/attendance/internal/services"
	"github.com/google/uuid"
)

// Exporter persists a list of records as a spreadsheet and returns its path.
type Exporter interface {
	Save(ctx context.Context, records []models.AttendanceRecord) (string, error)
}

type App struct {
	ledger   *services.Ledger
	exporter Exporter
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	admin    bool
}

// NewApp builds the terminal over ledger. Every log line of the session
// carries a fresh session id.
func NewApp(ledger *services.Ledger, exporter Exporter, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		ledger:   ledger,
		exporter: exporter,
		logger:   logger.With("session", uuid.NewString()),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

func (a *App) isAdmin() bool {
	return a.admin
}

func (a *App) prompt() string {
	if a.admin {
		return "attendance (admin)> "
	}
	return "attendance> "
}

// Run serves commands until the input is exhausted or the operator exits.
func (a *App) Run(ctx context.Context) {
	a.logger.Info(ctx, "terminal started")
	fmt.Fprintln(a.out, "Attendance terminal (type 'help' for commands)")
	runREPL(ctx, a, a.prompt, a.reader, a.out)
	a.logger.Info(ctx, "terminal stopped")
}
