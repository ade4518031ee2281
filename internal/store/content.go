package store

import (
	"database/sql"
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

// ContentValues returns home_content rows whose key starts with prefix.
// An empty prefix returns everything. Keys keep their full form.
func (s *Store) ContentValues(prefix string) (map[string]string, error) {
	query := `SELECT content_key, content_value FROM home_content`
	args := []interface{}{}
	if prefix != "" {
		query += ` WHERE content_key LIKE $1`
		args = append(args, prefix+"%")
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		values[key] = value
	}

	return values, rows.Err()
}

// UpsertContent stores a single content key/value pair.
func (s *Store) UpsertContent(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO home_content (content_key, content_value)
		VALUES ($1, $2)
		ON CONFLICT (content_key)
		DO UPDATE SET content_value = EXCLUDED.content_value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to upsert content %q: %w", key, err)
	}
	return nil
}

func (s *Store) ListHeroImages() ([]models.HeroImage, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, original_name, alt_text, display_order, created_at
		FROM hero_images
		ORDER BY display_order, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hero images: %w", err)
	}
	defer rows.Close()

	var images []models.HeroImage
	for rows.Next() {
		var img models.HeroImage
		err := rows.Scan(&img.ID, &img.Filename, &img.OriginalName, &img.AltText, &img.DisplayOrder, &img.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hero image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

func (s *Store) CreateHeroImage(filename, originalName, altText string, displayOrder int) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO hero_images (filename, original_name, alt_text, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, filename, originalName, altText, displayOrder).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create hero image: %w", err)
	}
	return id, nil
}

// DeleteHeroImage removes the row and returns the stored filename so the
// caller can delete the file.
func (s *Store) DeleteHeroImage(imageID int64) (string, error) {
	var filename string
	err := s.db.QueryRow(`
		DELETE FROM hero_images WHERE id = $1 RETURNING filename
	`, imageID).Scan(&filename)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to delete hero image: %w", err)
	}
	return filename, nil
}
