package store

import (
	"fmt"

	"github.com/ahmedmasry1001/steelsite/internal/models"
)

func (s *Store) ListContactCards(activeOnly bool) ([]models.ContactCard, error) {
	query := `
		SELECT id, title, details, sub_details, contact_type, icon_emoji, display_order, is_active, created_at
		FROM contact_cards
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY display_order, title"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact cards: %w", err)
	}
	defer rows.Close()

	var cards []models.ContactCard
	for rows.Next() {
		var card models.ContactCard
		err := rows.Scan(
			&card.ID, &card.Title, &card.Details, &card.SubDetails, &card.ContactType,
			&card.IconEmoji, &card.DisplayOrder, &card.IsActive, &card.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact card: %w", err)
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func (s *Store) CreateContactCard(req models.ContactCardRequest) (int64, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO contact_cards (title, details, sub_details, contact_type, icon_emoji, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.Title, req.Details, req.SubDetails, req.ContactType, req.IconEmoji,
		req.DisplayOrder, isActive).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact card: %w", err)
	}

	return id, nil
}

func (s *Store) UpdateContactCard(cardID int64, req models.ContactCardRequest) error {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	res, err := s.db.Exec(`
		UPDATE contact_cards
		SET title = $1, details = $2, sub_details = $3, contact_type = $4, icon_emoji = $5,
		    display_order = $6, is_active = $7
		WHERE id = $8
	`, req.Title, req.Details, req.SubDetails, req.ContactType, req.IconEmoji,
		req.DisplayOrder, isActive, cardID)
	if err != nil {
		return fmt.Errorf("failed to update contact card: %w", err)
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

func (s *Store) DeleteContactCard(cardID int64) error {
	res, err := s.db.Exec(`DELETE FROM contact_cards WHERE id = $1`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete contact card: %w", err)
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
