package models

import "time"

// CardStatus identifies which phase of the review lifecycle a card is in
type CardStatus string

const (
	// StatusNew - the card has never been rated
	StatusNew CardStatus = "new"
	// StatusLearning - the card is climbing the learning-step ladder
	StatusLearning CardStatus = "learning"
	// StatusReview - the card graduated and follows day-scale spacing
	StatusReview CardStatus = "review"
	// StatusRelearning - the card lapsed and is recovering
	StatusRelearning CardStatus = "relearning"
	// StatusSuspended - the card is excluded from study until un-suspended
	StatusSuspended CardStatus = "suspended"
)

// CardType identifies how a card's text is presented
type CardType string

const (
	// CardTypeBasic - plain front/back card
	CardTypeBasic CardType = "basic"
	// CardTypeCloze - the front holds cloze-marked text, the answer is the hidden span
	CardTypeCloze CardType = "cloze"
)

// Flashcard is the unit the scheduler operates on
type Flashcard struct {
	ID           string     `json:"id" db:"id"`
	DeckID       string     `json:"deck_id" db:"deck_id"`
	Front        string     `json:"front" db:"front"`
	Back         string     `json:"back" db:"back"`
	CardType     CardType   `json:"card_type" db:"card_type"`
	Status       CardStatus `json:"status" db:"status"`
	Interval     float64    `json:"interval" db:"interval"`       // Current spacing in fractional days
	EaseFactor   float64    `json:"ease_factor" db:"ease_factor"` // Interval growth factor, never below 1.3
	Reps         int        `json:"reps" db:"reps"`               // Consecutive successful reviews in review phase
	Lapses       int        `json:"lapses" db:"lapses"`           // "again" ratings received in review phase
	DueDate      time.Time  `json:"due_date" db:"due_date"`
	StepIndex    int        `json:"step_index" db:"step_index"` // Position in the learning-step ladder
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty" db:"last_reviewed"`
}

// NewFlashcard returns a card in the initial scheduling state: status new,
// ease factor 2.5, due immediately.
func NewFlashcard(id, deckID, front, back string, cardType CardType) Flashcard {
	now := time.Now()
	return Flashcard{
		ID:         id,
		DeckID:     deckID,
		Front:      front,
		Back:       back,
		CardType:   cardType,
		Status:     StatusNew,
		Interval:   0,
		EaseFactor: 2.5,
		DueDate:    now,
		CreatedAt:  now,
	}
}
