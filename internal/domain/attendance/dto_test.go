package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fieldError(t *testing.T, err error, field string) string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %v", err)
	msg, ok := errs.ToMap()[field]
	require.True(t, ok, "no error for field %q in %v", field, errs)
	return msg
}

func TestMarkAttendanceRequestValidate_MissingEmployee(t *testing.T) {
	req := MarkAttendanceRequest{}
	err := req.Validate()
	assert.Equal(t, "missing employee", fieldError(t, err, "employee_id"))
}

func TestMarkAttendanceRequestValidate_BadDate(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       strPtr("not-a-date"),
	}
	err := req.Validate()
	assert.Equal(t, "bad date", fieldError(t, err, "date"))
}

func TestMarkAttendanceRequestValidate_BadTimestampFormats(t *testing.T) {
	cases := []struct {
		field string
		req   MarkAttendanceRequest
	}{
		{"check_in", MarkAttendanceRequest{EmployeeID: "e", CheckIn: strPtr("09:00")}},
		{"check_out", MarkAttendanceRequest{EmployeeID: "e", CheckOut: strPtr("2024-01-15 18:00:00")}},
		{"break_start", MarkAttendanceRequest{EmployeeID: "e", BreakStart: strPtr("13h00")}},
		{"break_end", MarkAttendanceRequest{EmployeeID: "e", BreakEnd: strPtr("nope")}},
	}
	for _, c := range cases {
		err := c.req.Validate()
		assert.Equal(t, "bad "+c.field+" format", fieldError(t, err, c.field))
	}
}

func TestMarkAttendanceRequestValidate_InvalidStatus(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Status:     strPtr("SLEEPING"),
	}
	err := req.Validate()
	assert.Equal(t, "invalid status", fieldError(t, err, "status"))
}

func TestMarkAttendanceRequestValidate_EmptyStatusMeansAbsent(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Status:     strPtr(""),
	}
	require.NoError(t, req.Validate())

	sub := req.Normalize(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), time.UTC)
	assert.Nil(t, sub.Status)
}

func TestMarkAttendanceRequestValidate_Ordering(t *testing.T) {
	cases := []struct {
		name  string
		req   MarkAttendanceRequest
		field string
		msg   string
	}{
		{
			name: "checkout before checkin",
			req: MarkAttendanceRequest{
				EmployeeID: "e",
				CheckIn:    strPtr("2024-01-15T09:00:00Z"),
				CheckOut:   strPtr("2024-01-15T08:00:00Z"),
			},
			field: "check_out",
			msg:   "checkout before checkin",
		},
		{
			name: "checkout equal to checkin rejected",
			req: MarkAttendanceRequest{
				EmployeeID: "e",
				CheckIn:    strPtr("2024-01-15T09:00:00Z"),
				CheckOut:   strPtr("2024-01-15T09:00:00Z"),
			},
			field: "check_out",
			msg:   "checkout before checkin",
		},
		{
			name: "break before checkin",
			req: MarkAttendanceRequest{
				EmployeeID: "e",
				CheckIn:    strPtr("2024-01-15T09:00:00Z"),
				BreakStart: strPtr("2024-01-15T08:30:00Z"),
			},
			field: "break_start",
			msg:   "break before checkin",
		},
		{
			name: "break end before break start",
			req: MarkAttendanceRequest{
				EmployeeID: "e",
				BreakStart: strPtr("2024-01-15T13:00:00Z"),
				BreakEnd:   strPtr("2024-01-15T12:30:00Z"),
			},
			field: "break_end",
			msg:   "break end before break start",
		},
		{
			name: "break end after checkout",
			req: MarkAttendanceRequest{
				EmployeeID: "e",
				CheckOut:   strPtr("2024-01-15T17:00:00Z"),
				BreakEnd:   strPtr("2024-01-15T17:30:00Z"),
			},
			field: "break_end",
			msg:   "break end after checkout",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			assert.Equal(t, c.msg, fieldError(t, err, c.field))
		})
	}
}

func TestMarkAttendanceRequestValidate_PartialSubmissionsPass(t *testing.T) {
	// Ordering never compares against fields the submission did not carry.
	cases := []MarkAttendanceRequest{
		{EmployeeID: "e"},
		{EmployeeID: "e", CheckIn: strPtr("2024-01-15T09:00:00Z")},
		{EmployeeID: "e", CheckOut: strPtr("2024-01-15T18:00:00Z")},
		{EmployeeID: "e", BreakEnd: strPtr("2024-01-15T13:30:00Z")},
		{
			EmployeeID: "e",
			CheckIn:    strPtr("2024-01-15T09:00:00Z"),
			CheckOut:   strPtr("2024-01-15T18:00:00Z"),
			BreakStart: strPtr("2024-01-15T13:00:00Z"),
			BreakEnd:   strPtr("2024-01-15T13:30:00Z"),
		},
		{EmployeeID: "e", BreakStart: strPtr("2024-01-15T09:00:00Z"), CheckIn: strPtr("2024-01-15T09:00:00Z")}, // breakStart == checkIn allowed
	}
	for _, req := range cases {
		assert.NoError(t, req.Validate())
	}
}

func TestMarkAttendanceRequestNormalize(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("day defaults to today", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "e"}
		require.NoError(t, req.Validate())
		sub := req.Normalize(now, time.UTC)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), sub.Day)
	})

	t.Run("bare date keeps its calendar day", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "e", Date: strPtr("2024-01-15")}
		require.NoError(t, req.Validate())
		sub := req.Normalize(now, time.UTC)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), sub.Day)
	})

	t.Run("timestamp date is truncated to day start", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "e", Date: strPtr("2024-01-15T17:45:00Z")}
		require.NoError(t, req.Validate())
		sub := req.Normalize(now, time.UTC)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), sub.Day)
	})

	t.Run("notes are trimmed, blank kept as explicit clear", func(t *testing.T) {
		req := MarkAttendanceRequest{EmployeeID: "e", Notes: strPtr("  worked from home  ")}
		require.NoError(t, req.Validate())
		sub := req.Normalize(now, time.UTC)
		require.NotNil(t, sub.Notes)
		assert.Equal(t, "worked from home", *sub.Notes)

		blank := MarkAttendanceRequest{EmployeeID: "e", Notes: strPtr("   ")}
		require.NoError(t, blank.Validate())
		sub = blank.Normalize(now, time.UTC)
		require.NotNil(t, sub.Notes)
		assert.Equal(t, "", *sub.Notes)

		omitted := MarkAttendanceRequest{EmployeeID: "e"}
		require.NoError(t, omitted.Validate())
		sub = omitted.Normalize(now, time.UTC)
		assert.Nil(t, sub.Notes)
	})
}

func TestAttendanceFilterValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := AttendanceFilter{}
		require.NoError(t, f.Validate())
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 30, f.Limit)
	})

	t.Run("limit capped at 100", func(t *testing.T) {
		f := AttendanceFilter{Limit: 101}
		err := f.Validate()
		assert.Equal(t, "limit must not exceed 100", fieldError(t, err, "limit"))
	})

	t.Run("start after end rejected", func(t *testing.T) {
		f := AttendanceFilter{StartDate: strPtr("2024-02-01"), EndDate: strPtr("2024-01-01")}
		err := f.Validate()
		assert.Equal(t, "start_date must be before or equal to end_date", fieldError(t, err, "start_date"))
	})

	t.Run("same-day range accepted", func(t *testing.T) {
		f := AttendanceFilter{StartDate: strPtr("2024-01-01"), EndDate: strPtr("2024-01-01")}
		assert.NoError(t, f.Validate())
	})

	t.Run("bad dates rejected", func(t *testing.T) {
		f := AttendanceFilter{StartDate: strPtr("01-01-2024")}
		err := f.Validate()
		assert.Equal(t, "start_date must be in YYYY-MM-DD format", fieldError(t, err, "start_date"))
	})

	t.Run("negative page rejected", func(t *testing.T) {
		f := AttendanceFilter{Page: -1}
		err := f.Validate()
		assert.Equal(t, "page must be a positive number", fieldError(t, err, "page"))
	})

	t.Run("empty status means unfiltered", func(t *testing.T) {
		f := AttendanceFilter{Status: strPtr("")}
		require.NoError(t, f.Validate())
		assert.Nil(t, f.Status)
	})
}
