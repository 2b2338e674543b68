package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The store enforces the (employee_id, day) natural key uniquely; a creation
// that loses a race surfaces ErrDuplicateAttendance rather than a second row.
type AttendanceRepository interface {
	// Create inserts a new record for an employee-day.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDay retrieves the record for the natural key,
	// nil when none exists.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	// Update overwrites the mutable fields of an existing record.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// ListByEmployee retrieves one employee's records with filters and
	// pagination, ordered by day descending.
	ListByEmployee(ctx context.Context, employeeID string, filter AttendanceFilter) ([]Attendance, int64, error)
}
