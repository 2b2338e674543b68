package employee

import (
	"strings"
	"time"

	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"` // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`
}

// Validate checks required fields and formats. It does not normalize;
// call Normalize afterwards.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	// An explicit empty status means the same as omitting it.
	if r.Status != nil && *r.Status != "" && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: ACTIVE, INACTIVE, TERMINATED, ON_LEAVE",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize produces the entity to store: trimmed names, lowercased email,
// blank optional strings collapsed to absent, status defaulted to ACTIVE.
func (r *CreateEmployeeRequest) Normalize() Employee {
	emp := Employee{
		EmployeeCode: strings.TrimSpace(r.EmployeeCode),
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Email:        strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:        trimOptional(r.Phone),
		Department:   trimOptional(r.Department),
		Position:     trimOptional(r.Position),
		Status:       StatusActive,
	}

	if r.Status != nil && *r.Status != "" {
		emp.Status = Status(*r.Status)
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if d, ok := validator.IsValidDate(*r.HireDate); ok {
			emp.HireDate = &d
		}
	}

	return emp
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type EmployeeFilter struct {
	Status     *string `json:"status,omitempty"`
	Department *string `json:"department,omitempty"`
	Search     *string `json:"search,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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
		f.Limit = 10 // Default limit
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
			Message: "status must be one of: ACTIVE, INACTIVE, TERMINATED, ON_LEAVE",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// Summary is the reduced employee shape attached to attendance responses.
type Summary struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
}

type DeletedEmployeeResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Position:     e.Position,
		Status:       string(e.Status),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		d := e.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	return resp
}

// ToSummary maps the entity to the reduced shape used by attendance payloads.
func ToSummary(e Employee) Summary {
	return Summary{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Department:   e.Department,
		Position:     e.Position,
	}
}
