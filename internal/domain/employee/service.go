package employee

import (
	"context"
)

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// CreateEmployee validates and stores a new employee.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves a filtered, paginated directory page.
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and, by cascade, their attendance.
	DeleteEmployee(ctx context.Context, id string) (DeletedEmployeeResponse, error)
}

type ListEmployeesResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}

// Pagination is the page metadata shared by directory and attendance listings.
type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPagination derives the page metadata from a total row count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
