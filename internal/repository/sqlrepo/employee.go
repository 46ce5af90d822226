package sqlrepo

import (
	"context"
	"database/sql"
	"fmt"

	"empdir/internal/database"
	"empdir/internal/model"
	"empdir/internal/repository"
)

// EmployeeSQL is a database/sql implementation of repository.EmployeeRepository.
// It uses parameterized queries and contains no business logic.
type EmployeeSQL struct {
	db        *sql.DB
	insertSQL string
	selectSQL string
}

// NewEmployeeSQL creates a repository over table using the dialect's bind markers.
func NewEmployeeSQL(db *sql.DB, dialect database.Dialect, table string) (*EmployeeSQL, error) {
	if err := database.ValidateIdentifier(table); err != nil {
		return nil, err
	}
	p := dialect.Placeholder
	return &EmployeeSQL{
		db: db,
		insertSQL: fmt.Sprintf(
			`INSERT INTO %s (emp_id, first_name, last_name, primary_skill, location) VALUES (%s, %s, %s, %s, %s)`,
			table, p(1), p(2), p(3), p(4), p(5),
		),
		selectSQL: fmt.Sprintf(
			`SELECT emp_id, first_name, last_name, primary_skill, location FROM %s WHERE emp_id = %s LIMIT 1`,
			table, p(1),
		),
	}, nil
}

var _ repository.EmployeeRepository = (*EmployeeSQL)(nil)

// Create inserts one employee row as a single auto-committed statement.
func (r *EmployeeSQL) Create(ctx context.Context, emp *model.Employee) error {
	_, err := r.db.ExecContext(ctx, r.insertSQL,
		emp.EmpID,
		emp.FirstName,
		emp.LastName,
		emp.PrimarySkill,
		emp.Location,
	)
	return err
}

// FindByID fetches a single employee by emp_id.
func (r *EmployeeSQL) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	var e model.Employee
	if err := r.db.QueryRowContext(ctx, r.selectSQL, id).Scan(
		&e.EmpID,
		&e.FirstName,
		&e.LastName,
		&e.PrimarySkill,
		&e.Location,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
