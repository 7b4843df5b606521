package attendance

import (
	"context"

	"github.com/dmitrijs2005/attendance/internal/models"
)

// Repository describes storage operations over attendance events.
type Repository interface {
	// Insert stores rec and returns the assigned id.
	Insert(ctx context.Context, rec *models.AttendanceRecord) (int64, error)

	// List returns records matching f, newest first.
	List(ctx context.Context, f models.RecordFilter) ([]models.AttendanceRecord, error)

	// GetByID returns a single record or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error)

	// Update applies the supplied fields of p and stamps updated_at.
	Update(ctx context.Context, id int64, p models.RecordPatch, updatedAt models.Timestamp) error

	// Delete removes the record for good.
	Delete(ctx context.Context, id int64) error

	// CountByType counts events of type t dated day ("YYYY-MM-DD").
	CountByType(ctx context.Context, day string, t models.RecordType) (int64, error)

	// PresentEmployeeIDs lists employees with an entry and no exit on day.
	PresentEmployeeIDs(ctx context.Context, day string) ([]string, error)

	// Last returns the most recent event dated day, or nil when there is none.
	Last(ctx context.Context, day string) (*models.AttendanceRecord, error)
}
