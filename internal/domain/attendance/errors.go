package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee and date")
	ErrEmployeeNotActive   = errors.New("employee is not active")
)
