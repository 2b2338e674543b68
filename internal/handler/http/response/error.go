package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TusharVard/hrms-lite/internal/domain/attendance"
	"github.com/TusharVard/hrms-lite/internal/domain/employee"
	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
)

// devMode controls whether unexpected errors leak their detail to clients.
var devMode bool

// SetEnv configures error detail exposure; anything but "development"
// suppresses internals.
func SetEnv(env string) {
	devMode = env == "development"
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrEmployeeNotActive):
		Conflict(w, "Cannot mark attendance for an employee that is not active")

	// Default
	default:
		slog.Error("unexpected error", "error", err)
		if devMode {
			InternalServerError(w, err.Error())
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}
