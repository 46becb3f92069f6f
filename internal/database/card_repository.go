package database

import (
	"database/sql"
	"fmt"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// CardRepository handles database operations for flashcards
type CardRepository struct{}

// NewCardRepository creates a new repository instance
func NewCardRepository() *CardRepository {
	return &CardRepository{}
}

// GetByID returns a single card
func (r *CardRepository) GetByID(id string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := DB.Get(&card, "SELECT * FROM cards WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %v", err)
	}
	return &card, nil
}

// GetByDeck returns all cards of a deck in creation order
func (r *CardRepository) GetByDeck(deckID string) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := DB.Select(&cards, "SELECT * FROM cards WHERE deck_id = $1 ORDER BY created_at, id", deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for deck: %v", err)
	}
	return cards, nil
}

// GetAll returns every card across all decks in creation order
func (r *CardRepository) GetAll() ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := DB.Select(&cards, "SELECT * FROM cards ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to get cards: %v", err)
	}
	return cards, nil
}

// Create inserts a new card
func (r *CardRepository) Create(card *models.Flashcard) error {
	_, err := DB.Exec(`
		INSERT INTO cards (
			id, deck_id, front, back, card_type, status, interval, ease_factor,
			reps, lapses, due_date, step_index, created_at, last_reviewed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		card.ID,
		card.DeckID,
		card.Front,
		card.Back,
		card.CardType,
		card.Status,
		card.Interval,
		card.EaseFactor,
		card.Reps,
		card.Lapses,
		card.DueDate,
		card.StepIndex,
		card.CreatedAt,
		card.LastReviewed,
	)
	if err != nil {
		return fmt.Errorf("failed to create card: %v", err)
	}
	return nil
}

// Update modifies an existing card, including all scheduling fields
func (r *CardRepository) Update(card *models.Flashcard) error {
	result, err := DB.Exec(`
		UPDATE cards SET
			front = $1,
			back = $2,
			card_type = $3,
			status = $4,
			interval = $5,
			ease_factor = $6,
			reps = $7,
			lapses = $8,
			due_date = $9,
			step_index = $10,
			last_reviewed = $11
		WHERE id = $12`,
		card.Front,
		card.Back,
		card.CardType,
		card.Status,
		card.Interval,
		card.EaseFactor,
		card.Reps,
		card.Lapses,
		card.DueDate,
		card.StepIndex,
		card.LastReviewed,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card: %v", err)
	}
	return checkAffected(result, card.ID)
}

// SetStatus overwrites a card's status without touching its scheduling fields.
// Used for the explicit suspend/unsuspend action.
func (r *CardRepository) SetStatus(id string, status models.CardStatus) error {
	result, err := DB.Exec("UPDATE cards SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to set card status: %v", err)
	}
	return checkAffected(result, id)
}

// Delete removes a card
func (r *CardRepository) Delete(id string) error {
	_, err := DB.Exec("DELETE FROM cards WHERE id = $1", id)
	return err
}

func checkAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return nil // Driver doesn't report affected rows
	}
	if affected == 0 {
		return fmt.Errorf("card %s not found", id)
	}
	return nil
}
