package models

import "time"

// Deck groups flashcards under a title and school subject
type Deck struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Subject   string    `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
