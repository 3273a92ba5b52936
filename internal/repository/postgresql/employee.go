package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/pos-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/pos-attendance-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// ListActive implements employee.Repository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context, scope employee.Scope) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.user_id, e.business_id, u.name, u.email, e.is_active
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.business_id = $1
		  AND e.is_active = TRUE
		  AND ($2::uuid IS NULL OR e.user_id IN (
			SELECT eo.user_id FROM employee_outlets eo WHERE eo.outlet_id = $2::uuid
		  ))
		  AND ($3::uuid IS NULL OR e.user_id = $3::uuid)
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, scope.BusinessID, scope.OutletID, scope.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.UserID, &emp.BusinessID, &emp.Name, &emp.Email, &emp.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
