package spaced_repetition

import (
	"sort"
	"time"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// Counts summarizes a card collection for display, without quota truncation
type Counts struct {
	New       int `json:"new"`
	Learning  int `json:"learning"` // Due learning + relearning cards
	Review    int `json:"review"`   // Due review cards
	Suspended int `json:"suspended"`
}

// GetStudyQueue returns the cards to present now, in study order:
// due learning/relearning cards first (never quota-limited), then due review
// cards most-overdue first up to the remaining review quota, then new cards
// up to the remaining new quota. Suspended cards are excluded entirely.
//
// A dailyProgress from a previous day counts as zero studied; the passed-in
// value is not mutated, persisting the rollover is the caller's concern.
func GetStudyQueue(cards []models.Flashcard, settings models.Settings, dailyProgress models.DailyProgress) []models.Flashcard {
	now := time.Now()
	today := dailyProgress.ForToday(now)

	var learning, reviews, fresh []models.Flashcard
	for _, c := range cards {
		switch {
		case c.Status == models.StatusSuspended:
			continue
		case (c.Status == models.StatusLearning || c.Status == models.StatusRelearning) && !c.DueDate.After(now):
			learning = append(learning, c)
		case c.Status == models.StatusReview && !c.DueDate.After(now):
			reviews = append(reviews, c)
		case c.Status == models.StatusNew:
			fresh = append(fresh, c)
		}
	}

	// Most overdue reviews first
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].DueDate.Before(reviews[j].DueDate)
	})

	reviewQuota := settings.MaxReviewsPerDay - today.ReviewStudied
	if reviewQuota < 0 {
		reviewQuota = 0
	}
	if len(reviews) > reviewQuota {
		reviews = reviews[:reviewQuota]
	}

	newQuota := settings.MaxNewPerDay - today.NewStudied
	if newQuota < 0 {
		newQuota = 0
	}
	if len(fresh) > newQuota {
		fresh = fresh[:newQuota]
	}

	queue := make([]models.Flashcard, 0, len(learning)+len(reviews)+len(fresh))
	queue = append(queue, learning...)
	queue = append(queue, reviews...)
	queue = append(queue, fresh...)
	return queue
}

// GetCounts reports how many cards fall in each study bucket, using the same
// filters as GetStudyQueue but without quotas.
func GetCounts(cards []models.Flashcard) Counts {
	now := time.Now()
	var counts Counts
	for _, c := range cards {
		switch {
		case c.Status == models.StatusNew:
			counts.New++
		case (c.Status == models.StatusLearning || c.Status == models.StatusRelearning) && !c.DueDate.After(now):
			counts.Learning++
		case c.Status == models.StatusReview && !c.DueDate.After(now):
			counts.Review++
		case c.Status == models.StatusSuspended:
			counts.Suspended++
		}
	}
	return counts
}
