package attendance

import (
	"time"
)

// Attendance is the canonical record for one employee-day. Day carries no
// time-of-day component; the four timestamps are absolute instants.
type Attendance struct {
	ID         string
	EmployeeID string
	Day        time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusHalfDay Status = "HALF_DAY"
	StatusOnLeave Status = "ON_LEAVE"
)

// ValidStatuses lists every accepted attendance status.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
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
