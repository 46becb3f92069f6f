package database

import (
	"fmt"
	"strings"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// DeckRepository handles database operations for decks
type DeckRepository struct{}

// NewDeckRepository creates a new repository instance
func NewDeckRepository() *DeckRepository {
	return &DeckRepository{}
}

// GetAll returns all decks ordered by title
func (r *DeckRepository) GetAll() ([]models.Deck, error) {
	var decks []models.Deck
	err := DB.Select(&decks, "SELECT * FROM decks ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("failed to get decks: %v", err)
	}
	return decks, nil
}

// GetByID returns a single deck
func (r *DeckRepository) GetByID(id string) (*models.Deck, error) {
	var deck models.Deck
	err := DB.Get(&deck, "SELECT * FROM decks WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %v", err)
	}
	return &deck, nil
}

// GetByTitle returns a deck with the given title, matched case-insensitively
func (r *DeckRepository) GetByTitle(title string) (*models.Deck, error) {
	var deck models.Deck
	err := DB.Get(&deck, "SELECT * FROM decks WHERE LOWER(title) = $1", strings.ToLower(title))
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// Create inserts a new deck
func (r *DeckRepository) Create(deck *models.Deck) error {
	_, err := DB.Exec(
		"INSERT INTO decks (id, title, subject, created_at) VALUES ($1, $2, $3, $4)",
		deck.ID, deck.Title, deck.Subject, deck.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create deck: %v", err)
	}
	return nil
}

// Delete removes a deck and all of its cards
func (r *DeckRepository) Delete(id string) error {
	if _, err := DB.Exec("DELETE FROM cards WHERE deck_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete deck cards: %v", err)
	}
	if _, err := DB.Exec("DELETE FROM decks WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete deck: %v", err)
	}
	return nil
}
