package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TusharVard/hrms-lite/internal/domain/attendance"
	"github.com/TusharVard/hrms-lite/internal/domain/employee"
	"github.com/TusharVard/hrms-lite/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, day, check_in, check_out,
	   break_start, break_end, status, notes, created_at, updated_at`

// Create implements attendance.AttendanceRepository.
// The unique index on (employee_id, day) converts a lost creation race into
// ErrDuplicateAttendance; a broken employee reference surfaces as not found.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.Must(uuid.NewV7()).String()

	query := `
		INSERT INTO attendances (
			id, employee_id, day, check_in, check_out,
			break_start, break_end, status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Day,
		att.CheckIn,
		att.CheckOut,
		att.BreakStart,
		att.BreakEnd,
		att.Status,
		att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation: // (employee_id, day)
				return attendance.Attendance{}, attendance.ErrDuplicateAttendance
			case foreignKeyViolation: // employee_id
				return attendance.Attendance{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDay implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1
		  AND day = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance for this employee-day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and day: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
// EmployeeID and Day are the immutable natural key and are never written.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_in = $2,
			check_out = $3,
			break_start = $4,
			break_end = $5,
			status = $6,
			notes = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.CheckIn,
		att.CheckOut,
		att.BreakStart,
		att.BreakEnd,
		att.Status,
		att.Notes,
	).Scan(&att.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause. The day column is a DATE, so comparing against the
	// bare bounds keeps a same-day range inclusive of the whole day.
	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND day >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND day <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Fetch page, most recent day first
	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE %s
		ORDER BY day DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return attendances, total, nil
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Day, &att.CheckIn, &att.CheckOut,
		&att.BreakStart, &att.BreakEnd, &att.Status, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}
