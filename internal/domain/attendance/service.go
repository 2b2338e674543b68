package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance validates a submission and creates or amends the
	// canonical record for the employee-day.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResult, error)

	// GetEmployeeAttendance retrieves one employee's records over an
	// optional date range, annotated with derived metrics.
	GetEmployeeAttendance(ctx context.Context, employeeID string, filter AttendanceFilter) (ListAttendanceResponse, error)
}
