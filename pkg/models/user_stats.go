package models

import "time"

// UserStats tracks cumulative gamification state, mutated once per rated review
type UserStats struct {
	XP            int       `json:"xp" db:"xp"`
	Level         int       `json:"level" db:"level"`
	Streak        int       `json:"streak" db:"streak"` // Consecutive study days
	LastStudyDate time.Time `json:"last_study_date" db:"last_study_date"`
	CardsLearned  int       `json:"cards_learned" db:"cards_learned"`
}

// NewUserStats returns the stats of a user who has never studied
func NewUserStats() UserStats {
	return UserStats{Level: 1}
}
