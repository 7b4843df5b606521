// Package employees provides the persistence layer for employee identities.
//
// Employees are referenced by attendance records through a plain lookup key;
// no foreign key ties the two tables, so deleting an employee leaves its
// historical events untouched.
package employees

import (
	"context"

	"github.com/dmitrijs2005/attendance/internal/models"
)

// Repository describes CRUD operations for Employee objects.
type Repository interface {
	// List returns employees ordered by name, optionally only active ones.
	List(ctx context.Context, activeOnly bool) ([]models.Employee, error)

	// GetByID returns an employee or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Employee, error)

	// Create inserts e; an existing id yields common.ErrDuplicateID.
	Create(ctx context.Context, e *models.Employee) error

	// Update applies the supplied fields of p and stamps updated_at.
	Update(ctx context.Context, id string, p models.EmployeePatch, updatedAt models.Timestamp) error

	// Delete removes the employee without touching attendance records.
	Delete(ctx context.Context, id string) error
}
