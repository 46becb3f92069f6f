package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// SettingsRepository handles database operations for the single settings row
type SettingsRepository struct{}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// settingsRow mirrors the settings table; learning steps are stored as a
// comma-separated list of minutes
type settingsRow struct {
	ID                 int     `db:"id"`
	LearningSteps      string  `db:"learning_steps"`
	GraduatingInterval float64 `db:"graduating_interval"`
	EasyBonus          float64 `db:"easy_bonus"`
	LeechThreshold     int     `db:"leech_threshold"`
	ReactionTimeTarget int64   `db:"reaction_time_target"`
	MaxNewPerDay       int     `db:"max_new_per_day"`
	MaxReviewsPerDay   int     `db:"max_reviews_per_day"`
}

// Get returns the stored settings, or the defaults if none were saved yet
func (r *SettingsRepository) Get() (models.Settings, error) {
	var row settingsRow
	err := DB.Get(&row, "SELECT * FROM settings WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %v", err)
	}

	steps, err := parseSteps(row.LearningSteps)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse learning steps: %v", err)
	}

	return models.Settings{
		LearningSteps:      steps,
		GraduatingInterval: row.GraduatingInterval,
		EasyBonus:          row.EasyBonus,
		LeechThreshold:     row.LeechThreshold,
		ReactionTimeTarget: row.ReactionTimeTarget,
		MaxNewPerDay:       row.MaxNewPerDay,
		MaxReviewsPerDay:   row.MaxReviewsPerDay,
	}, nil
}

// Save stores the settings, replacing any previous row
func (r *SettingsRepository) Save(settings models.Settings) error {
	_, err := DB.Exec(`
		INSERT INTO settings (
			id, learning_steps, graduating_interval, easy_bonus,
			leech_threshold, reaction_time_target, max_new_per_day, max_reviews_per_day
		) VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			learning_steps = EXCLUDED.learning_steps,
			graduating_interval = EXCLUDED.graduating_interval,
			easy_bonus = EXCLUDED.easy_bonus,
			leech_threshold = EXCLUDED.leech_threshold,
			reaction_time_target = EXCLUDED.reaction_time_target,
			max_new_per_day = EXCLUDED.max_new_per_day,
			max_reviews_per_day = EXCLUDED.max_reviews_per_day`,
		formatSteps(settings.LearningSteps),
		settings.GraduatingInterval,
		settings.EasyBonus,
		settings.LeechThreshold,
		settings.ReactionTimeTarget,
		settings.MaxNewPerDay,
		settings.MaxReviewsPerDay,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %v", err)
	}
	return nil
}

func parseSteps(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	steps := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		val, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		steps = append(steps, val)
	}
	return steps, nil
}

func formatSteps(steps []float64) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = strconv.FormatFloat(step, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
