package spaced_repetition

import (
	"math"
	"time"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// XP awards per rated review
const (
	baseXP     = 10
	newCardXP  = 15
	easyXPGain = 5
	againXP    = 2
	xpPerLevel = 500
)

// UpdateUserStats applies the XP, level and streak changes for one rated
// review. previousStatus is the card's status before scheduling was applied.
// The input stats value is not mutated.
func UpdateUserStats(stats models.UserStats, rating Rating, previousStatus models.CardStatus) models.UserStats {
	now := time.Now()
	next := stats

	gain := baseXP
	if previousStatus == models.StatusNew {
		gain = newCardXP
	}
	if rating == RatingEasy {
		gain += easyXPGain
	}
	if rating == RatingAgain {
		// Failed reviews never earn the new-card bonus
		gain = againXP
	}

	next.XP += gain
	next.Level = next.XP/xpPerLevel + 1

	// Streak compares midnight-normalized days
	days := daysBetween(stats.LastStudyDate, now)
	switch {
	case days == 1:
		next.Streak++
	case days > 1:
		next.Streak = 1
	}
	next.LastStudyDate = now

	return next
}

func daysBetween(earlier, later time.Time) int {
	a := startOfDay(earlier)
	b := startOfDay(later)
	// Rounding keeps DST-shortened days from counting as zero
	return int(math.Round(b.Sub(a).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
