package spaced_repetition

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// Rating is the user's self-assessment of a single recall attempt
type Rating string

const (
	// RatingAgain - failed to recall
	RatingAgain Rating = "again"
	// RatingHard - recalled with significant effort
	RatingHard Rating = "hard"
	// RatingGood - recalled normally
	RatingGood Rating = "good"
	// RatingEasy - recalled instantly
	RatingEasy Rating = "easy"
)

const minutesPerDay = 1440.0

// Tuning constants shared by the review-phase transitions
const (
	// Ease factor never drops below this, per SM-2 convention
	minEaseFactor = 1.3
	// Ease penalty applied on a lapse
	lapseEasePenalty = 0.2
	// Ease penalty applied on a hard review
	hardEasePenalty = 0.15
	// Ease reward applied on an easy review
	easyEaseReward = 0.15
	// Fixed slow growth applied on a hard review
	hardIntervalGrowth = 1.2
	// Share of the pre-lapse interval restored when leaving relearning
	relearnRecovery = 0.5
	// Intervals above this many days get randomized to spread due dates
	fuzzThresholdDays = 2.0
)

// ScheduleCard computes a card's next scheduling state after a rating.
// The input card is never mutated; the returned card has LastReviewed set to
// now and interval, ease factor, status, counters and due date updated.
// timeTakenMs is the user's response latency in milliseconds.
func ScheduleCard(card models.Flashcard, rating Rating, timeTakenMs int64, settings models.Settings) (models.Flashcard, error) {
	if len(settings.LearningSteps) == 0 {
		return models.Flashcard{}, fmt.Errorf("settings have no learning steps")
	}

	switch rating {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
	default:
		return models.Flashcard{}, fmt.Errorf("unknown rating %q", rating)
	}

	now := time.Now()
	next := card
	next.LastReviewed = &now

	// A good/easy answer that took over 3x the target reaction time is
	// treated as one tier less confident than claimed.
	adjusted := rating
	if (rating == RatingGood || rating == RatingEasy) && timeTakenMs > settings.ReactionTimeTarget*3 {
		if rating == RatingEasy {
			adjusted = RatingGood
		} else {
			adjusted = RatingHard
		}
	}

	var interval float64 // In fractional days

	switch card.Status {
	case models.StatusNew, models.StatusLearning:
		switch adjusted {
		case RatingAgain:
			// Back to the first learning step
			next.StepIndex = 0
			interval = settings.LearningSteps[0] / minutesPerDay
		case RatingHard:
			// Repeat the current step
			idx := card.StepIndex
			if idx < 0 || idx >= len(settings.LearningSteps) {
				idx = 0
			}
			interval = settings.LearningSteps[idx] / minutesPerDay
		case RatingGood:
			nextIndex := card.StepIndex + 1
			if nextIndex < len(settings.LearningSteps) {
				next.StepIndex = nextIndex
				next.Status = models.StatusLearning
				interval = settings.LearningSteps[nextIndex] / minutesPerDay
			} else {
				// Ladder exhausted: graduate to review
				next.Status = models.StatusReview
				next.StepIndex = 0
				interval = settings.GraduatingInterval
			}
		case RatingEasy:
			// Immediate graduation
			next.Status = models.StatusReview
			next.StepIndex = 0
			interval = settings.GraduatingInterval * settings.EasyBonus
		}

	case models.StatusReview:
		switch adjusted {
		case RatingAgain:
			// Memory lapse: demote to relearning and penalize ease
			next.Status = models.StatusRelearning
			next.Lapses++
			next.EaseFactor = math.Max(minEaseFactor, card.EaseFactor-lapseEasePenalty)
			next.Reps = 0
			interval = settings.LearningSteps[0] / minutesPerDay

			// Leech detection
			if next.Lapses >= settings.LeechThreshold {
				next.Status = models.StatusSuspended
			}
		case RatingHard:
			interval = card.Interval * hardIntervalGrowth
			next.EaseFactor = math.Max(minEaseFactor, card.EaseFactor-hardEasePenalty)
		case RatingGood:
			interval = card.Interval * card.EaseFactor
			next.Reps++
		case RatingEasy:
			interval = card.Interval * card.EaseFactor * settings.EasyBonus
			next.EaseFactor = card.EaseFactor + easyEaseReward
			next.Reps++
		}

	case models.StatusRelearning:
		switch adjusted {
		case RatingAgain, RatingHard:
			// Repeat the relearning step; hard earns no second lapse penalty
			interval = settings.LearningSteps[0] / minutesPerDay
		case RatingGood, RatingEasy:
			// Recover at half the pre-lapse interval, at least one day
			next.Status = models.StatusReview
			interval = math.Max(1, card.Interval*relearnRecovery)
		}

	case models.StatusSuspended:
		return models.Flashcard{}, fmt.Errorf("cannot schedule a suspended card")

	default:
		return models.Flashcard{}, fmt.Errorf("unknown card status %q", card.Status)
	}

	// Fuzzing: spread long review intervals by +/-5% so future due dates
	// don't pile up on the same day
	if next.Status == models.StatusReview && interval > fuzzThresholdDays {
		interval *= 0.95 + rand.Float64()*0.1
	}

	next.Interval = interval
	next.DueDate = now.Add(time.Duration(interval * float64(24*time.Hour)))

	return next, nil
}
