package employee

import (
	"context"
	"fmt"

	"github.com/TusharVard/hrms-lite/internal/domain/employee"
	"github.com/TusharVard/hrms-lite/internal/pkg/database"
	"github.com/TusharVard/hrms-lite/internal/pkg/validator"
	"github.com/TusharVard/hrms-lite/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := req.Normalize()

	// Pre-checks give precise conflict errors; the unique indexes still back
	// them if two creations race.
	existing, err := s.EmployeeRepository.GetByCode(ctx, emp.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	existing, err = s.EmployeeRepository.GetByEmail(ctx, emp.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Employees:  responses,
		Pagination: employee.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	// A malformed id can never reference a row; reject it before it reaches
	// the uuid column.
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) (employee.DeletedEmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.DeletedEmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	var emp employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		var err error
		emp, err = s.EmployeeRepository.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		// Attendance rows go with the employee via the cascading foreign key.
		return s.EmployeeRepository.Delete(txCtx, emp.ID)
	})
	if err != nil {
		return employee.DeletedEmployeeResponse{}, err
	}

	return employee.DeletedEmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.FullName(),
	}, nil
}
