package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Department   *string
	Position     *string
	HireDate     *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusTerminated Status = "TERMINATED"
	StatusOnLeave    Status = "ON_LEAVE"
)

// ValidStatuses lists every accepted lifecycle status.
var ValidStatuses = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusTerminated),
	string(StatusOnLeave),
}

// IsValidStatus reports whether s is one of the enumerated statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
