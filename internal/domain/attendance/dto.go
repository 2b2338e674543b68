package attendance

import (
	"strings"
	"time"

	"github.com/TusharVard/hrms-lite/internal/domain/employee"
	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MarkAttendanceRequest is one raw submission for an employee-day. Every
// field except EmployeeID is optional; pointers distinguish "absent" from
// "present but empty", which drives the field-level merge.
type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD or ISO8601
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	// Parsed during Validate, consumed by Normalize.
	date       *time.Time
	checkIn    *time.Time
	checkOut   *time.Time
	breakStart *time.Time
	breakEnd   *time.Time
}

// Validate parses every supplied field and runs the temporal ordering rules.
// Ordering only compares fields present in this submission; a partial
// submission never fails against fields it did not carry.
func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "missing employee",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if t, ok := validator.IsValidInstant(*r.Date); ok {
			r.date = &t
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "bad date",
			})
		}
	}

	parse := func(field string, raw *string) *time.Time {
		if raw == nil || *raw == "" {
			return nil
		}
		t, ok := validator.IsValidDateTime(*raw)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "bad " + field + " format",
			})
			return nil
		}
		return &t
	}

	r.checkIn = parse("check_in", r.CheckIn)
	r.checkOut = parse("check_out", r.CheckOut)
	r.breakStart = parse("break_start", r.BreakStart)
	r.breakEnd = parse("break_end", r.BreakEnd)

	// An explicit empty status means the same as omitting it.
	if r.Status != nil && *r.Status != "" && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status",
		})
	}

	// Ordering rules over the supplied subset.
	if r.checkIn != nil && r.checkOut != nil && !r.checkOut.After(*r.checkIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "checkout before checkin",
		})
	}
	if r.breakStart != nil && r.checkIn != nil && r.breakStart.Before(*r.checkIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break before checkin",
		})
	}
	if r.breakEnd != nil && r.breakStart != nil && !r.breakEnd.After(*r.breakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break end before break start",
		})
	}
	if r.breakEnd != nil && r.checkOut != nil && r.breakEnd.After(*r.checkOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break end after checkout",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize converts a validated request into a Submission. The day key is
// the calendar date of the supplied date (read in loc when it carries a
// time-of-day), defaulting to today per the injected now.
func (r *MarkAttendanceRequest) Normalize(now time.Time, loc *time.Location) Submission {
	sub := Submission{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		CheckIn:    r.checkIn,
		CheckOut:   r.checkOut,
		BreakStart: r.breakStart,
		BreakEnd:   r.breakEnd,
	}

	day := now.In(loc)
	if r.date != nil {
		day = r.date.In(loc)
		if r.date.Hour() == 0 && r.date.Minute() == 0 && r.date.Second() == 0 && r.date.Location() == time.UTC {
			// Bare YYYY-MM-DD dates parse as UTC midnight; keep that
			// calendar date instead of shifting it through loc.
			day = *r.date
		}
	}
	sub.Day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if r.Status != nil && *r.Status != "" {
		s := Status(*r.Status)
		sub.Status = &s
	}

	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		sub.Notes = &trimmed
	}

	return sub
}

// Submission is a normalized attendance submission: parsed instants, the
// midnight-normalized day key, and three-state notes (nil = untouched,
// empty = clear, value = set).
type Submission struct {
	EmployeeID string
	Day        time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	Status     *Status
	Notes      *string
}

type AttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 30 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status == "" {
		f.Status = nil // Empty status means unfiltered
	}
	if f.Status != nil && !IsValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status",
		})
	}

	var start, end *time.Time
	if f.StartDate != nil && *f.StartDate != "" {
		if d, valid := validator.IsValidDate(*f.StartDate); valid {
			start = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if d, valid := validator.IsValidDate(*f.EndDate); valid {
			end = &d
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if start != nil && end != nil && start.After(*end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be before or equal to end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	CheckIn       *string  `json:"check_in,omitempty"`
	CheckOut      *string  `json:"check_out,omitempty"`
	BreakStart    *string  `json:"break_start,omitempty"`
	BreakEnd      *string  `json:"break_end,omitempty"`
	Status        string   `json:"status"`
	Notes         *string  `json:"notes,omitempty"`
	WorkingHours  *float64 `json:"working_hours"`
	BreakDuration *float64 `json:"break_duration"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// MarkAttendanceResult reports the persisted record plus whether this
// submission created the record or amended an existing one.
type MarkAttendanceResult struct {
	Created    bool               `json:"-"`
	Attendance AttendanceResponse `json:"attendance"`
	Employee   employee.Summary   `json:"employee"`
}

type ListAttendanceResponse struct {
	Employee    employee.Summary     `json:"employee"`
	Attendances []AttendanceResponse `json:"attendances"`
	Pagination  employee.Pagination  `json:"pagination"`
}

// ToResponse maps the entity to its API shape, annotated with derived metrics.
func ToResponse(a Attendance) AttendanceResponse {
	workingHours, breakDuration := DeriveMetrics(a)
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Day.Format("2006-01-02"),
		CheckIn:       timePtrToString(a.CheckIn),
		CheckOut:      timePtrToString(a.CheckOut),
		BreakStart:    timePtrToString(a.BreakStart),
		BreakEnd:      timePtrToString(a.BreakEnd),
		Status:        string(a.Status),
		Notes:         a.Notes,
		WorkingHours:  workingHours,
		BreakDuration: breakDuration,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
