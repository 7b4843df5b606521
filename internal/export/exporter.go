package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/attendance/internal/filex"
	"github.com/dmitrijs2005/attendance/internal/logging"
	"github.com/dmitrijs2005/attendance/internal/models"
)

// FileName returns the export file name for the day of t.
func FileName(t time.Time) string {
	return fmt.Sprintf("Attendance_%s.xlsx", t.Format(models.DateLayout))
}

// Exporter saves workbooks into the export directory.
//
// The directory is Dir when set; otherwise the first of the user's Desktop,
// the executable's directory and the working directory that exists.
type Exporter struct {
	Dir    string
	Now    func() time.Time
	Logger logging.Logger

	homeDir    func() (string, error)
	executable func() (string, error)
	getwd      func() (string, error)
}

func NewExporter(dir string, logger logging.Logger) *Exporter {
	return &Exporter{
		Dir:        dir,
		Now:        time.Now,
		Logger:     logger,
		homeDir:    os.UserHomeDir,
		executable: os.Executable,
		getwd:      os.Getwd,
	}
}

// Directory resolves where the next export is written.
func (e *Exporter) Directory() (string, error) {
	if e.Dir != "" {
		if err := filex.EnsureDir(e.Dir); err != nil {
			return "", err
		}
		return e.Dir, nil
	}

	var candidates []string
	if home, err := e.homeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, "Desktop"))
	}
	if exe, err := e.executable(); err == nil && exe != "" {
		candidates = append(candidates, filepath.Dir(exe))
	}
	if dir := filex.FirstExistingDir(candidates...); dir != "" {
		return dir, nil
	}

	cwd, err := e.getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return cwd, nil
}

// Save writes records to a new workbook and returns its absolute path. An
// existing file of the same name is replaced.
func (e *Exporter) Save(ctx context.Context, records []models.AttendanceRecord) (string, error) {
	dir, err := e.Directory()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(e.Now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWorkbook(f, records); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	e.Logger.Info(ctx, "workbook saved", "path", path, "rows", len(records))
	return path, nil
}
