package store

import (
	"database/sql"
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

func (s *Store) CreateContact(req models.ContactRequest) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO contacts (name, email, phone, company, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, req.Name, req.Email, req.Phone, req.Company, req.Message).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}

	return id, nil
}

func (s *Store) ListContacts() ([]models.Contact, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, phone, company, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Message, &c.Status, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

func (s *Store) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM admins
		WHERE username = $1
	`, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

// EnsureAdmin creates the named admin account if it does not exist yet.
func (s *Store) EnsureAdmin(username, passwordHash string) error {
	_, err := s.db.Exec(`
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to ensure admin: %w", err)
	}
	return nil
}
