package store

import (
	"database/sql"
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

// ProjectFilter narrows the public project listing.
type ProjectFilter struct {
	Featured bool
	Category string
	Limit    int
}

// ProjectWithMain pairs a project with the path of its main image, if any.
type ProjectWithMain struct {
	models.Project
	MainImagePath sql.NullString
}

func (s *Store) ListActiveProjects(filter ProjectFilter) ([]ProjectWithMain, error) {
	query := `
		SELECT p.id, p.title, p.description, p.category, p.location, p.size, p.year,
		       p.featured, p.status, p.created_at, p.updated_at,
		       pi.image_path AS main_image
		FROM projects p
		LEFT JOIN project_images pi ON p.id = pi.project_id AND pi.is_main = TRUE
		WHERE p.status = 'active'
	`
	args := []interface{}{}
	if filter.Featured {
		query += " AND p.featured = TRUE"
	}
	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	query += " ORDER BY p.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []ProjectWithMain
	for rows.Next() {
		var p ProjectWithMain
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Category, &p.Location, &p.Size, &p.Year,
			&p.Featured, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.MainImagePath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Store) GetActiveProject(projectID int64) (*models.Project, error) {
	var p models.Project
	err := s.db.QueryRow(`
		SELECT id, title, description, category, location, size, year, featured, status, created_at, updated_at
		FROM projects
		WHERE id = $1 AND status = 'active'
	`, projectID).Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Location, &p.Size, &p.Year,
		&p.Featured, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

func (s *Store) CreateProject(req models.ProjectRequest) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO projects (title, description, category, location, size, year, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.Title, req.Description, req.Category, req.Location, req.Size, req.Year, req.Featured).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	return id, nil
}

func (s *Store) UpdateProject(projectID int64, req models.ProjectRequest) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET title = $1, description = $2, category = $3, location = $4, size = $5, year = $6,
		    featured = $7, updated_at = NOW()
		WHERE id = $8
	`, req.Title, req.Description, req.Category, req.Location, req.Size, req.Year, req.Featured, projectID)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

// DeleteProject removes a project and its image rows, returning the stored
// image paths so the caller can clean up files on disk.
func (s *Store) DeleteProject(projectID int64) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT image_path FROM project_images WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project images: %w", err)
	}

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan image path: %w", err)
		}
		paths = append(paths, path)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`DELETE FROM project_images WHERE project_id = $1`, projectID); err != nil {
		return nil, fmt.Errorf("failed to delete project images: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit delete: %w", err)
	}

	return paths, nil
}
