package attendance

import (
	"context"
	"fmt"

	"github.com/TusharVard/hrms-lite/internal/domain/attendance"
	"github.com/TusharVard/hrms-lite/internal/domain/employee"
	"github.com/TusharVard/hrms-lite/internal/pkg/clock"
	"github.com/TusharVard/hrms-lite/internal/pkg/database"
	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
	"github.com/TusharVard/hrms-lite/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock     clock.Clock
	threshold attendance.LateThreshold
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	threshold attendance.LateThreshold,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		threshold:            threshold,
	}
}

// MarkAttendance implements attendance.AttendanceService.
//
// The flow is gate -> lookup -> pure create/merge -> persist, all inside one
// transaction. Two concurrent first submissions can still both see an empty
// day; the unique (employee_id, day) index turns the lost creation race into
// ErrDuplicateAttendance instead of a second row, and the caller decides
// whether to retry.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResult{}, err
	}
	sub := req.Normalize(s.clock.Now(), s.threshold.Location)

	if !validator.IsValidUUID(sub.EmployeeID) {
		return attendance.MarkAttendanceResult{}, employee.ErrEmployeeNotFound
	}

	var (
		emp     employee.Employee
		stored  attendance.Attendance
		created bool
	)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		// Gate: the employee must exist and be ACTIVE at submission time.
		// Read fresh on every call, never cached.
		var err error
		emp, err = s.EmployeeRepository.GetByID(txCtx, sub.EmployeeID)
		if err != nil {
			return err
		}
		if emp.Status != employee.StatusActive {
			return fmt.Errorf("%w: %s", attendance.ErrEmployeeNotActive, emp.Status)
		}

		existing, err := s.AttendanceRepository.GetByEmployeeAndDay(txCtx, sub.EmployeeID, sub.Day)
		if err != nil {
			return err
		}

		if existing == nil {
			stored, err = s.AttendanceRepository.Create(txCtx, attendance.NewRecord(sub, s.threshold))
			if err != nil {
				return err
			}
			created = true
			return nil
		}

		stored, err = s.AttendanceRepository.Update(txCtx, attendance.Merge(*existing, sub))
		return err
	})
	if err != nil {
		return attendance.MarkAttendanceResult{}, err
	}

	return attendance.MarkAttendanceResult{
		Created:    created,
		Attendance: attendance.ToResponse(stored),
		Employee:   employee.ToSummary(emp),
	}, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if !validator.IsValidUUID(employeeID) {
		return attendance.ListAttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Employee:    employee.ToSummary(emp),
		Attendances: responses,
		Pagination:  employee.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}
