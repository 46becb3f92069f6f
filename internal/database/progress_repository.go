package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// DailyProgressRepository handles database operations for daily study counters
type DailyProgressRepository struct{}

// NewDailyProgressRepository creates a new repository instance
func NewDailyProgressRepository() *DailyProgressRepository {
	return &DailyProgressRepository{}
}

// Get returns the counters stored for a date key, or zero counters for that
// date if the day has not been studied yet
func (r *DailyProgressRepository) Get(date string) (models.DailyProgress, error) {
	var progress models.DailyProgress
	err := DB.Get(&progress, "SELECT * FROM daily_progress WHERE date = $1", date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyProgress{Date: date}, nil
	}
	if err != nil {
		return models.DailyProgress{}, fmt.Errorf("failed to get daily progress: %v", err)
	}
	return progress, nil
}

// Save stores the counters for the progress' date key
func (r *DailyProgressRepository) Save(progress models.DailyProgress) error {
	_, err := DB.Exec(`
		INSERT INTO daily_progress (date, new_studied, review_studied)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET
			new_studied = EXCLUDED.new_studied,
			review_studied = EXCLUDED.review_studied`,
		progress.Date,
		progress.NewStudied,
		progress.ReviewStudied,
	)
	if err != nil {
		return fmt.Errorf("failed to save daily progress: %v", err)
	}
	return nil
}
