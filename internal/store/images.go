package store

import (
	"database/sql"
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

func (s *Store) ListProjectImages(projectID int64) ([]models.ProjectImage, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, image_path, image_name, is_main, created_at
		FROM project_images
		WHERE project_id = $1
		ORDER BY is_main DESC, created_at
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project images: %w", err)
	}
	defer rows.Close()

	var images []models.ProjectImage
	for rows.Next() {
		var img models.ProjectImage
		err := rows.Scan(&img.ID, &img.ProjectID, &img.ImagePath, &img.ImageName, &img.IsMain, &img.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (s *Store) HasMainImage(projectID int64) (bool, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM project_images WHERE project_id = $1 AND is_main = TRUE
	`, projectID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count main images: %w", err)
	}
	return count > 0, nil
}

func (s *Store) CreateProjectImage(projectID int64, imagePath, imageName string, isMain bool) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO project_images (project_id, image_path, image_name, is_main)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, projectID, imagePath, imageName, isMain).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create project image: %w", err)
	}
	return id, nil
}

func (s *Store) GetProjectImage(projectID, imageID int64) (*models.ProjectImage, error) {
	var img models.ProjectImage
	err := s.db.QueryRow(`
		SELECT id, project_id, image_path, image_name, is_main, created_at
		FROM project_images
		WHERE id = $1 AND project_id = $2
	`, imageID, projectID).Scan(&img.ID, &img.ProjectID, &img.ImagePath, &img.ImageName, &img.IsMain, &img.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project image: %w", err)
	}
	return &img, nil
}

func (s *Store) DeleteProjectImage(projectID, imageID int64) error {
	res, err := s.db.Exec(`
		DELETE FROM project_images WHERE id = $1 AND project_id = $2
	`, imageID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project image: %w", err)
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

// SetMainProjectImage makes imageID the sole main image of the project.
// The unset and set run in one transaction so the at-most-one-main
// invariant holds at every commit point.
func (s *Store) SetMainProjectImage(projectID, imageID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		UPDATE project_images SET is_main = FALSE WHERE project_id = $1
	`, projectID); err != nil {
		return fmt.Errorf("failed to unset main images: %w", err)
	}

	res, err := tx.Exec(`
		UPDATE project_images SET is_main = TRUE WHERE id = $1 AND project_id = $2
	`, imageID, projectID)
	if err != nil {
		return fmt.Errorf("failed to set main image: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit main image update: %w", err)
	}

	return nil
}
