package attendance

import (
	"math"
	"time"
)

// LateThreshold is the wall-clock cutoff after which an inferred first
// check-in counts as LATE. Compared in Location on the check-in's own
// calendar day.
type LateThreshold struct {
	Hour     int
	Minute   int
	Location *time.Location
}

// ParseLateThreshold reads an "HH:MM" threshold in the given location.
func ParseLateThreshold(value string, loc *time.Location) (LateThreshold, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return LateThreshold{}, err
	}
	return LateThreshold{Hour: t.Hour(), Minute: t.Minute(), Location: loc}, nil
}

// InferStatus resolves the status for a brand-new record when the submission
// did not carry one: PRESENT by default, LATE when the check-in falls after
// the threshold on its own calendar day. An explicitly supplied status is
// never overridden; callers only invoke this on the create path.
func InferStatus(checkIn *time.Time, threshold LateThreshold) Status {
	if checkIn == nil {
		return StatusPresent
	}

	local := checkIn.In(threshold.Location)
	cutoff := time.Date(
		local.Year(), local.Month(), local.Day(),
		threshold.Hour, threshold.Minute, 0, 0,
		threshold.Location,
	)
	if local.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// NewRecord builds the record a first submission creates. Unsupplied
// timestamp fields stay absent; status falls back to inference.
func NewRecord(sub Submission, threshold LateThreshold) Attendance {
	att := Attendance{
		EmployeeID: sub.EmployeeID,
		Day:        sub.Day,
		CheckIn:    sub.CheckIn,
		CheckOut:   sub.CheckOut,
		BreakStart: sub.BreakStart,
		BreakEnd:   sub.BreakEnd,
	}

	if sub.Status != nil {
		att.Status = *sub.Status
	} else {
		att.Status = InferStatus(sub.CheckIn, threshold)
	}

	if sub.Notes != nil && *sub.Notes != "" {
		att.Notes = sub.Notes
	}

	return att
}

// Merge applies one submission on top of an existing record, field by field.
// Only fields the submission carries overwrite stored values. Notes are
// three-state: absent leaves the stored note, an empty string clears it.
// Merge is pure; the caller persists the result.
func Merge(existing Attendance, sub Submission) Attendance {
	merged := existing

	if sub.CheckIn != nil {
		merged.CheckIn = sub.CheckIn
	}
	if sub.CheckOut != nil {
		merged.CheckOut = sub.CheckOut
	}
	if sub.BreakStart != nil {
		merged.BreakStart = sub.BreakStart
	}
	if sub.BreakEnd != nil {
		merged.BreakEnd = sub.BreakEnd
	}
	if sub.Status != nil {
		merged.Status = *sub.Status
	}
	if sub.Notes != nil {
		if *sub.Notes == "" {
			merged.Notes = nil
		} else {
			merged.Notes = sub.Notes
		}
	}

	return merged
}

// DeriveMetrics computes working hours and break duration in hours, rounded
// to two decimals. Both are nil unless check-in and check-out are present;
// the break is subtracted only when both its bounds are present. Negative
// results are preserved as computed, never clamped.
func DeriveMetrics(a Attendance) (workingHours, breakDuration *float64) {
	if a.CheckIn == nil || a.CheckOut == nil {
		return nil, nil
	}

	hours := a.CheckOut.Sub(*a.CheckIn).Hours()

	if a.BreakStart != nil && a.BreakEnd != nil {
		breakHours := a.BreakEnd.Sub(*a.BreakStart).Hours()
		hours -= breakHours
		rounded := round2(breakHours)
		breakDuration = &rounded
	}

	hours = round2(hours)
	workingHours = &hours
	return workingHours, breakDuration
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
