package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcThreshold(t *testing.T) LateThreshold {
	t.Helper()
	threshold, err := ParseLateThreshold("09:30", time.UTC)
	require.NoError(t, err)
	return threshold
}

func timePtr(t time.Time) *time.Time { return &t }

func TestInferStatus(t *testing.T) {
	threshold := utcThreshold(t)

	t.Run("no check-in defaults to PRESENT", func(t *testing.T) {
		assert.Equal(t, StatusPresent, InferStatus(nil, threshold))
	})

	t.Run("on-time check-in is PRESENT", func(t *testing.T) {
		in := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, StatusPresent, InferStatus(&in, threshold))
	})

	t.Run("exactly at threshold is PRESENT", func(t *testing.T) {
		in := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
		assert.Equal(t, StatusPresent, InferStatus(&in, threshold))
	})

	t.Run("after threshold is LATE", func(t *testing.T) {
		in := time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC)
		assert.Equal(t, StatusLate, InferStatus(&in, threshold))
	})

	t.Run("threshold compares on the check-in's own day", func(t *testing.T) {
		// A 23:50 check-in the previous day is long past that day's 09:30.
		in := time.Date(2024, 1, 14, 23, 50, 0, 0, time.UTC)
		assert.Equal(t, StatusLate, InferStatus(&in, threshold))
	})

	t.Run("wall clock read in the threshold location", func(t *testing.T) {
		jakarta := time.FixedZone("WIB", 7*60*60)
		local, err := ParseLateThreshold("09:30", jakarta)
		require.NoError(t, err)

		// 02:45 UTC is 09:45 in UTC+7.
		in := time.Date(2024, 1, 15, 2, 45, 0, 0, time.UTC)
		assert.Equal(t, StatusLate, InferStatus(&in, local))

		// 02:00 UTC is 09:00 in UTC+7.
		in = time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC)
		assert.Equal(t, StatusPresent, InferStatus(&in, local))
	})
}

func TestNewRecord(t *testing.T) {
	threshold := utcThreshold(t)
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("explicit status wins over inference", func(t *testing.T) {
		late := time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC)
		status := StatusHalfDay
		att := NewRecord(Submission{
			EmployeeID: "e",
			Day:        day,
			CheckIn:    &late,
			Status:     &status,
		}, threshold)
		assert.Equal(t, StatusHalfDay, att.Status)
	})

	t.Run("status inferred when absent", func(t *testing.T) {
		late := time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC)
		att := NewRecord(Submission{EmployeeID: "e", Day: day, CheckIn: &late}, threshold)
		assert.Equal(t, StatusLate, att.Status)

		onTime := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
		att = NewRecord(Submission{EmployeeID: "e", Day: day, CheckIn: &onTime}, threshold)
		assert.Equal(t, StatusPresent, att.Status)
	})

	t.Run("unsupplied fields stay absent", func(t *testing.T) {
		att := NewRecord(Submission{EmployeeID: "e", Day: day}, threshold)
		assert.Nil(t, att.CheckIn)
		assert.Nil(t, att.CheckOut)
		assert.Nil(t, att.BreakStart)
		assert.Nil(t, att.BreakEnd)
		assert.Nil(t, att.Notes)
		assert.Equal(t, StatusPresent, att.Status)
	})

	t.Run("blank notes stay absent on create", func(t *testing.T) {
		blank := ""
		att := NewRecord(Submission{EmployeeID: "e", Day: day, Notes: &blank}, threshold)
		assert.Nil(t, att.Notes)
	})
}

func TestMerge(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	breakStart := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)
	notes := "existing note"
	existing := Attendance{
		ID:         "att-1",
		EmployeeID: "e",
		Day:        day,
		CheckIn:    &checkIn,
		BreakStart: &breakStart,
		Status:     StatusPresent,
		Notes:      &notes,
	}

	t.Run("only supplied fields overwrite", func(t *testing.T) {
		checkOut := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)
		merged := Merge(existing, Submission{EmployeeID: "e", Day: day, CheckOut: &checkOut})

		assert.Equal(t, &checkIn, merged.CheckIn)
		assert.Equal(t, &breakStart, merged.BreakStart)
		assert.Equal(t, &checkOut, merged.CheckOut)
		assert.Nil(t, merged.BreakEnd)
		assert.Equal(t, StatusPresent, merged.Status)
		require.NotNil(t, merged.Notes)
		assert.Equal(t, "existing note", *merged.Notes)
	})

	t.Run("identical submission is idempotent", func(t *testing.T) {
		sub := Submission{
			EmployeeID: "e",
			Day:        day,
			CheckIn:    &checkIn,
			BreakStart: &breakStart,
			Notes:      &notes,
		}
		once := Merge(existing, sub)
		twice := Merge(once, sub)
		assert.Equal(t, once, twice)
	})

	t.Run("blank notes clear the stored note", func(t *testing.T) {
		blank := ""
		merged := Merge(existing, Submission{EmployeeID: "e", Day: day, Notes: &blank})
		assert.Nil(t, merged.Notes)
	})

	t.Run("absent notes leave the stored note", func(t *testing.T) {
		merged := Merge(existing, Submission{EmployeeID: "e", Day: day})
		require.NotNil(t, merged.Notes)
		assert.Equal(t, "existing note", *merged.Notes)
	})

	t.Run("status overwrites only when supplied", func(t *testing.T) {
		status := StatusOnLeave
		merged := Merge(existing, Submission{EmployeeID: "e", Day: day, Status: &status})
		assert.Equal(t, StatusOnLeave, merged.Status)

		merged = Merge(existing, Submission{EmployeeID: "e", Day: day})
		assert.Equal(t, StatusPresent, merged.Status)
	})

	t.Run("natural key never changes", func(t *testing.T) {
		merged := Merge(existing, Submission{EmployeeID: "other", Day: day.AddDate(0, 0, 1)})
		assert.Equal(t, "e", merged.EmployeeID)
		assert.Equal(t, day, merged.Day)
	})
}

func TestDeriveMetrics(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("full day with break", func(t *testing.T) {
		att := Attendance{
			Day:        day,
			CheckIn:    timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut:   timePtr(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)),
			BreakStart: timePtr(time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)),
			BreakEnd:   timePtr(time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)),
		}
		working, breakDur := DeriveMetrics(att)
		require.NotNil(t, working)
		require.NotNil(t, breakDur)
		assert.Equal(t, 8.5, *working)
		assert.Equal(t, 0.5, *breakDur)
	})

	t.Run("no break", func(t *testing.T) {
		att := Attendance{
			Day:      day,
			CheckIn:  timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut: timePtr(time.Date(2024, 1, 15, 17, 15, 0, 0, time.UTC)),
		}
		working, breakDur := DeriveMetrics(att)
		require.NotNil(t, working)
		assert.Equal(t, 8.25, *working)
		assert.Nil(t, breakDur)
	})

	t.Run("missing check-out yields nils", func(t *testing.T) {
		att := Attendance{
			Day:     day,
			CheckIn: timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		}
		working, breakDur := DeriveMetrics(att)
		assert.Nil(t, working)
		assert.Nil(t, breakDur)
	})

	t.Run("one-sided break is ignored", func(t *testing.T) {
		att := Attendance{
			Day:        day,
			CheckIn:    timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut:   timePtr(time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)),
			BreakStart: timePtr(time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)),
		}
		working, breakDur := DeriveMetrics(att)
		require.NotNil(t, working)
		assert.Equal(t, 9.0, *working)
		assert.Nil(t, breakDur)
	})

	t.Run("negative values preserved, never clamped", func(t *testing.T) {
		// Possible only when upstream validation is bypassed; the computed
		// value must pass through as-is.
		att := Attendance{
			Day:        day,
			CheckIn:    timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut:   timePtr(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
			BreakStart: timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			BreakEnd:   timePtr(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)),
		}
		working, breakDur := DeriveMetrics(att)
		require.NotNil(t, working)
		require.NotNil(t, breakDur)
		assert.Equal(t, -2.0, *working)
		assert.Equal(t, 3.0, *breakDur)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		att := Attendance{
			Day:      day,
			CheckIn:  timePtr(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
			CheckOut: timePtr(time.Date(2024, 1, 15, 17, 10, 0, 0, time.UTC)),
		}
		working, _ := DeriveMetrics(att)
		require.NotNil(t, working)
		assert.Equal(t, 8.17, *working) // 8h10m = 8.1666...
	})
}
