package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"empdir/internal/model"
	"empdir/internal/repository"
)

var (
	ErrNotFound    = errors.New("employee not found")
	ErrPersistence = errors.New("persistence failure")
)

// EmployeeService defines the directory use cases.
type EmployeeService interface {
	// Add stores a new employee. Any store failure, including a duplicate
	// emp_id, is reported as ErrPersistence.
	Add(ctx context.Context, emp model.Employee) (*model.Employee, error)

	// Get returns the employee with the given emp_id, ErrNotFound on a miss,
	// or ErrPersistence when the store fails.
	Get(ctx context.Context, id string) (*model.Employee, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Add(ctx context.Context, emp model.Employee) (*model.Employee, error) {
	if err := s.repo.Create(ctx, &emp); err != nil {
		return nil, persistenceError("insert employee", err)
	}
	return &emp, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, persistenceError("find employee", err)
	}
	return emp, nil
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
