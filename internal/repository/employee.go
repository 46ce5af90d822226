package repository

import (
	"context"

	"empdir/internal/model"
)

// EmployeeRepository defines data access for employees using SQL queries only.
// Implementations do persistence only; error mapping lives in the service.
type EmployeeRepository interface {
	// Create inserts a new employee row. Duplicate keys are rejected by the store.
	Create(ctx context.Context, emp *model.Employee) error

	// FindByID returns the first employee whose emp_id equals id.
	// It returns sql.ErrNoRows when nothing matches.
	FindByID(ctx context.Context, id string) (*model.Employee, error)
}
