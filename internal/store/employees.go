package store

import (
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

func (s *Store) ListEmployees(activeOnly bool) ([]models.Employee, error) {
	query := `
		SELECT id, name, role, experience_years, specialty, bio, email, phone, avatar_url,
		       display_order, is_active, created_at
		FROM employees
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order, name"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		err := rows.Scan(
			&e.ID, &e.Name, &e.Role, &e.ExperienceYears, &e.Specialty, &e.Bio,
			&e.Email, &e.Phone, &e.AvatarURL, &e.DisplayOrder, &e.IsActive, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (s *Store) CreateEmployee(req models.EmployeeRequest) (int64, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO employees (name, role, experience_years, specialty, bio, email, phone, avatar_url, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, req.Name, req.Role, req.ExperienceYears, req.Specialty, req.Bio,
		req.Email, req.Phone, req.AvatarURL, req.DisplayOrder, isActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return id, nil
}

func (s *Store) UpdateEmployee(employeeID int64, req models.EmployeeRequest) error {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	res, err := s.db.Exec(`
		UPDATE employees
		SET name = $1, role = $2, experience_years = $3, specialty = $4, bio = $5,
		    email = $6, phone = $7, avatar_url = $8, display_order = $9, is_active = $10
		WHERE id = $11
	`, req.Name, req.Role, req.ExperienceYears, req.Specialty, req.Bio,
		req.Email, req.Phone, req.AvatarURL, req.DisplayOrder, isActive, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) DeleteEmployee(employeeID int64) error {
	res, err := s.db.Exec(`DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
