package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

func testSettings() models.Settings {
	return models.Settings{
		LearningSteps:      []float64{1, 10},
		GraduatingInterval: 1,
		EasyBonus:          1.3,
		LeechThreshold:     8,
		ReactionTimeTarget: 5000,
		MaxNewPerDay:       20,
		MaxReviewsPerDay:   100,
	}
}

func newCard() models.Flashcard {
	return models.NewFlashcard("c1", "d1", "front", "back", models.CardTypeBasic)
}

func reviewCard(interval, ease float64) models.Flashcard {
	card := newCard()
	card.Status = models.StatusReview
	card.Interval = interval
	card.EaseFactor = ease
	return card
}

func TestScheduleCardGraduationLadder(t *testing.T) {
	settings := testSettings()
	card := newCard()

	// First good: advance to the 10 minute step
	first, err := ScheduleCard(card, RatingGood, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLearning, first.Status)
	assert.Equal(t, 1, first.StepIndex)
	assert.InDelta(t, 10.0/1440.0, first.Interval, 1e-9)
	assert.NotNil(t, first.LastReviewed)

	// Second good: ladder exhausted, graduate at the graduating interval
	second, err := ScheduleCard(first, RatingGood, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, second.Status)
	assert.Equal(t, 0, second.StepIndex)
	assert.Equal(t, 1.0, second.Interval) // <= 2 days, so no fuzz
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), second.DueDate, 5*time.Second)
}

func TestScheduleCardLearningAgainResetsLadder(t *testing.T) {
	settings := testSettings()
	card := newCard()
	card.Status = models.StatusLearning
	card.StepIndex = 1

	next, err := ScheduleCard(card, RatingAgain, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, 0, next.StepIndex)
	assert.InDelta(t, 1.0/1440.0, next.Interval, 1e-9)
	assert.Equal(t, models.StatusLearning, next.Status)
}

func TestScheduleCardLearningHardRepeatsStep(t *testing.T) {
	settings := testSettings()
	card := newCard()
	card.Status = models.StatusLearning
	card.StepIndex = 1

	next, err := ScheduleCard(card, RatingHard, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, 1, next.StepIndex)
	assert.InDelta(t, 10.0/1440.0, next.Interval, 1e-9)
}

func TestScheduleCardEasyGraduatesImmediately(t *testing.T) {
	settings := testSettings()

	next, err := ScheduleCard(newCard(), RatingEasy, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, next.Status)
	assert.InDelta(t, 1.3, next.Interval, 1e-9) // graduatingInterval * easyBonus, <= 2 so no fuzz
}

func TestScheduleCardReviewGood(t *testing.T) {
	settings := testSettings()
	card := reviewCard(0.5, 2.5)
	card.Reps = 3

	next, err := ScheduleCard(card, RatingGood, 2000, settings)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, next.Interval, 1e-9)
	assert.Equal(t, 4, next.Reps)
	assert.Equal(t, 2.5, next.EaseFactor)
}

func TestScheduleCardReviewHard(t *testing.T) {
	settings := testSettings()
	card := reviewCard(1.0, 2.5)

	next, err := ScheduleCard(card, RatingHard, 2000, settings)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, next.Interval, 1e-9)
	assert.InDelta(t, 2.35, next.EaseFactor, 1e-9)
	assert.Equal(t, models.StatusReview, next.Status)
	assert.Equal(t, 0, next.Reps)
}

func TestScheduleCardReviewEasyRaisesEase(t *testing.T) {
	settings := testSettings()
	card := reviewCard(0.5, 2.5)

	next, err := ScheduleCard(card, RatingEasy, 2000, settings)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*2.5*1.3, next.Interval, 1e-9)
	assert.InDelta(t, 2.65, next.EaseFactor, 1e-9)
	assert.Equal(t, 1, next.Reps)
}

func TestScheduleCardReviewAgainLapses(t *testing.T) {
	settings := testSettings()
	card := reviewCard(10, 2.5)
	card.Reps = 5

	next, err := ScheduleCard(card, RatingAgain, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRelearning, next.Status)
	assert.Equal(t, 1, next.Lapses)
	assert.Equal(t, 0, next.Reps)
	assert.InDelta(t, 2.3, next.EaseFactor, 1e-9)
	assert.InDelta(t, 1.0/1440.0, next.Interval, 1e-9)
}

func TestScheduleCardEaseFloor(t *testing.T) {
	settings := testSettings()

	card := reviewCard(1.0, 1.3)
	next, err := ScheduleCard(card, RatingHard, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, 1.3, next.EaseFactor)

	card = reviewCard(1.0, 1.35)
	next, err = ScheduleCard(card, RatingAgain, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, 1.3, next.EaseFactor)
}

func TestScheduleCardLeechAutoSuspend(t *testing.T) {
	settings := testSettings()
	card := reviewCard(5, 2.5)
	card.Lapses = settings.LeechThreshold - 1

	next, err := ScheduleCard(card, RatingAgain, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, next.Status)
	assert.Equal(t, settings.LeechThreshold, next.Lapses)
}

func TestScheduleCardRelearningRecovery(t *testing.T) {
	settings := testSettings()
	card := newCard()
	card.Status = models.StatusRelearning
	card.Interval = 1.5

	next, err := ScheduleCard(card, RatingGood, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReview, next.Status)
	// Half of 1.5 clamps up to the 1 day minimum
	assert.Equal(t, 1.0, next.Interval)
}

func TestScheduleCardRelearningAgainAndHardRepeatStep(t *testing.T) {
	settings := testSettings()
	card := newCard()
	card.Status = models.StatusRelearning
	card.Interval = 4
	card.Lapses = 2

	for _, rating := range []Rating{RatingAgain, RatingHard} {
		next, err := ScheduleCard(card, rating, 2000, settings)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRelearning, next.Status)
		assert.InDelta(t, 1.0/1440.0, next.Interval, 1e-9)
		// No extra lapse penalty outside the review phase
		assert.Equal(t, 2, next.Lapses)
	}
}

func TestScheduleCardReactionTimeDowngrade(t *testing.T) {
	settings := testSettings()
	slow := settings.ReactionTimeTarget*3 + 1

	// Slow easy schedules as good: interval * EF, no bonus, ease unchanged
	card := reviewCard(0.5, 2.5)
	next, err := ScheduleCard(card, RatingEasy, slow, settings)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, next.Interval, 1e-9)
	assert.Equal(t, 2.5, next.EaseFactor)
	assert.Equal(t, 1, next.Reps)

	// Slow good schedules as hard
	card = reviewCard(1.0, 2.5)
	next, err = ScheduleCard(card, RatingGood, slow, settings)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, next.Interval, 1e-9)
	assert.InDelta(t, 2.35, next.EaseFactor, 1e-9)

	// Again is never downgraded further
	card = reviewCard(1.0, 2.5)
	next, err = ScheduleCard(card, RatingAgain, slow, settings)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRelearning, next.Status)
}

func TestScheduleCardDeterministicBelowFuzzThreshold(t *testing.T) {
	settings := testSettings()
	card := reviewCard(0.5, 2.5)

	first, err := ScheduleCard(card, RatingGood, 2000, settings)
	require.NoError(t, err)
	second, err := ScheduleCard(card, RatingGood, 2000, settings)
	require.NoError(t, err)

	// Resulting interval is 1.25 days, below the fuzz threshold, so the
	// numeric outcome must be identical across calls
	assert.Equal(t, first.Interval, second.Interval)
	assert.Equal(t, first.EaseFactor, second.EaseFactor)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Reps, second.Reps)
}

func TestScheduleCardFuzzStaysWithinBounds(t *testing.T) {
	settings := testSettings()
	card := reviewCard(4, 2.5)

	for i := 0; i < 50; i++ {
		next, err := ScheduleCard(card, RatingGood, 2000, settings)
		require.NoError(t, err)
		// 4 * 2.5 = 10 days, fuzzed by +/-5%
		assert.GreaterOrEqual(t, next.Interval, 10*0.95)
		assert.LessOrEqual(t, next.Interval, 10*1.05)
	}
}

func TestScheduleCardDoesNotMutateInput(t *testing.T) {
	settings := testSettings()
	card := reviewCard(5, 2.5)
	card.Reps = 3
	before := card

	_, err := ScheduleCard(card, RatingAgain, 2000, settings)
	require.NoError(t, err)
	assert.Equal(t, before, card)
}

func TestScheduleCardInvalidInput(t *testing.T) {
	settings := testSettings()

	_, err := ScheduleCard(newCard(), Rating("meh"), 2000, settings)
	assert.Error(t, err)

	_, err = ScheduleCard(newCard(), RatingGood, 2000, models.Settings{})
	assert.Error(t, err)

	card := newCard()
	card.Status = models.CardStatus("archived")
	_, err = ScheduleCard(card, RatingGood, 2000, settings)
	assert.Error(t, err)

	card.Status = models.StatusSuspended
	_, err = ScheduleCard(card, RatingGood, 2000, settings)
	assert.Error(t, err)
}
