package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

func TestUpdateUserStatsXPAwards(t *testing.T) {
	tests := []struct {
		name           string
		rating         Rating
		previousStatus models.CardStatus
		wantXP         int
	}{
		{"good review", RatingGood, models.StatusReview, 10},
		{"good new card", RatingGood, models.StatusNew, 15},
		{"easy review", RatingEasy, models.StatusReview, 15},
		{"easy new card", RatingEasy, models.StatusNew, 20},
		{"hard review", RatingHard, models.StatusReview, 10},
		{"again review", RatingAgain, models.StatusReview, 2},
		{"again new card still flat", RatingAgain, models.StatusNew, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := UpdateUserStats(models.UserStats{Level: 1}, tt.rating, tt.previousStatus)
			assert.Equal(t, tt.wantXP, next.XP)
		})
	}
}

func TestUpdateUserStatsLevelRecomputed(t *testing.T) {
	stats := models.UserStats{XP: 495, Level: 1, LastStudyDate: time.Now()}

	next := UpdateUserStats(stats, RatingGood, models.StatusReview)
	assert.Equal(t, 505, next.XP)
	assert.Equal(t, 2, next.Level)
}

func TestUpdateUserStatsStreak(t *testing.T) {
	now := time.Now()

	// Studied yesterday: streak extends
	stats := models.UserStats{Streak: 4, LastStudyDate: now.AddDate(0, 0, -1)}
	next := UpdateUserStats(stats, RatingGood, models.StatusReview)
	assert.Equal(t, 5, next.Streak)

	// Gap of 3 days: streak resets to 1
	stats = models.UserStats{Streak: 4, LastStudyDate: now.AddDate(0, 0, -3)}
	next = UpdateUserStats(stats, RatingGood, models.StatusReview)
	assert.Equal(t, 1, next.Streak)

	// Already studied today: streak unchanged, timestamp still refreshed
	earlier := now.Add(-time.Minute)
	stats = models.UserStats{Streak: 4, LastStudyDate: earlier}
	next = UpdateUserStats(stats, RatingGood, models.StatusReview)
	assert.Equal(t, 4, next.Streak)
	assert.True(t, next.LastStudyDate.After(earlier))
}

func TestUpdateUserStatsDoesNotMutateInput(t *testing.T) {
	stats := models.UserStats{XP: 100, Level: 1, Streak: 2, LastStudyDate: time.Now().AddDate(0, 0, -1)}
	before := stats

	UpdateUserStats(stats, RatingEasy, models.StatusNew)
	assert.Equal(t, before, stats)
}
