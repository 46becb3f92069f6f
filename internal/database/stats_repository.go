package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// StatsRepository handles database operations for the single user-stats row
type StatsRepository struct{}

// NewStatsRepository creates a new repository instance
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// Get returns the stored stats, or a fresh level-1 record if none exist yet
func (r *StatsRepository) Get() (models.UserStats, error) {
	var stats models.UserStats
	err := DB.Get(&stats, "SELECT xp, level, streak, last_study_date, cards_learned FROM user_stats WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewUserStats(), nil
	}
	if err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get user stats: %v", err)
	}
	return stats, nil
}

// Save stores the stats, replacing any previous row
func (r *StatsRepository) Save(stats models.UserStats) error {
	_, err := DB.Exec(`
		INSERT INTO user_stats (id, xp, level, streak, last_study_date, cards_learned)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			xp = EXCLUDED.xp,
			level = EXCLUDED.level,
			streak = EXCLUDED.streak,
			last_study_date = EXCLUDED.last_study_date,
			cards_learned = EXCLUDED.cards_learned`,
		stats.XP,
		stats.Level,
		stats.Streak,
		stats.LastStudyDate,
		stats.CardsLearned,
	)
	if err != nil {
		return fmt.Errorf("failed to save user stats: %v", err)
	}
	return nil
}
