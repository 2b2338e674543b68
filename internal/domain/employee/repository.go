package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	// Create inserts a new employee. Unique violations on employee_code or
	// email surface as ErrEmployeeCodeExists / ErrEmailExists.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee, ErrEmployeeNotFound when absent.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode retrieves an employee by its human-readable code.
	GetByCode(ctx context.Context, code string) (*Employee, error)

	// GetByEmail retrieves an employee by email (stored lowercase).
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// List retrieves employees with filters and pagination, newest first.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Delete removes an employee; attendance rows cascade at the store level.
	Delete(ctx context.Context, id string) error
}
