package session

import (
	"fmt"
	"time"

	"github.com/otavio0machado/Nexus-Study/internal/spaced_repetition"
	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// Store defines the persistence operations a study session needs.
// internal/database.Store satisfies it; tests use an in-memory fake.
type Store interface {
	Card(id string) (*models.Flashcard, error)
	// Cards returns one deck's cards, or every card when deckID is empty
	Cards(deckID string) ([]models.Flashcard, error)
	SaveCard(card *models.Flashcard) error
	SetCardStatus(id string, status models.CardStatus) error
	Settings() (models.Settings, error)
	Stats() (models.UserStats, error)
	SaveStats(stats models.UserStats) error
	DailyProgress(date string) (models.DailyProgress, error)
	SaveDailyProgress(progress models.DailyProgress) error
}

// Service runs the read-modify-write cycle for study actions. The host is
// expected to call it from a single goroutine per user action so that card,
// stats and counter updates commit together.
type Service struct {
	store Store
}

// New creates a study session service
func New(store Store) *Service {
	return &Service{store: store}
}

// ReviewResult carries everything a single rated review changed
type ReviewResult struct {
	Card     models.Flashcard
	Stats    models.UserStats
	Progress models.DailyProgress
}

// ReviewCard applies one rating to a card: it schedules the card, updates the
// user's stats and today's counters, and persists all three.
func (s *Service) ReviewCard(cardID string, rating spaced_repetition.Rating, timeTakenMs int64) (*ReviewResult, error) {
	card, err := s.store.Card(cardID)
	if err != nil {
		return nil, err
	}

	settings, err := s.store.Settings()
	if err != nil {
		return nil, err
	}

	previousStatus := card.Status

	updated, err := spaced_repetition.ScheduleCard(*card, rating, timeTakenMs, settings)
	if err != nil {
		return nil, err
	}

	stats, err := s.store.Stats()
	if err != nil {
		return nil, err
	}
	newStats := spaced_repetition.UpdateUserStats(stats, rating, previousStatus)

	// Graduating out of the pre-review phase counts as a card learned
	if (previousStatus == models.StatusNew || previousStatus == models.StatusLearning) &&
		updated.Status == models.StatusReview {
		newStats.CardsLearned++
	}

	progress, err := s.todayProgress()
	if err != nil {
		return nil, err
	}
	if previousStatus == models.StatusNew {
		progress.NewStudied++
	} else {
		progress.ReviewStudied++
	}

	if err := s.store.SaveCard(&updated); err != nil {
		return nil, err
	}
	if err := s.store.SaveStats(newStats); err != nil {
		return nil, err
	}
	if err := s.store.SaveDailyProgress(progress); err != nil {
		return nil, err
	}

	return &ReviewResult{Card: updated, Stats: newStats, Progress: progress}, nil
}

// StudyQueue returns the ordered cards to study now for one deck, or across
// all decks when deckID is empty.
func (s *Service) StudyQueue(deckID string) ([]models.Flashcard, error) {
	cards, err := s.store.Cards(deckID)
	if err != nil {
		return nil, err
	}
	settings, err := s.store.Settings()
	if err != nil {
		return nil, err
	}
	progress, err := s.todayProgress()
	if err != nil {
		return nil, err
	}
	return spaced_repetition.GetStudyQueue(cards, settings, progress), nil
}

// Counts returns the display counts for one deck, or across all decks when
// deckID is empty.
func (s *Service) Counts(deckID string) (spaced_repetition.Counts, error) {
	cards, err := s.store.Cards(deckID)
	if err != nil {
		return spaced_repetition.Counts{}, err
	}
	return spaced_repetition.GetCounts(cards), nil
}

// SuspendCard excludes a card from study until it is un-suspended
func (s *Service) SuspendCard(cardID string) error {
	return s.store.SetCardStatus(cardID, models.StatusSuspended)
}

// UnsuspendCard returns a suspended card to the review phase. Lapses are
// cleared so a former leech isn't re-suspended on its first failure.
func (s *Service) UnsuspendCard(cardID string) error {
	card, err := s.store.Card(cardID)
	if err != nil {
		return err
	}
	if card.Status != models.StatusSuspended {
		return fmt.Errorf("card %s is not suspended", cardID)
	}
	card.Status = models.StatusReview
	card.Lapses = 0
	return s.store.SaveCard(card)
}

// Stats returns the user's gamification state
func (s *Service) Stats() (models.UserStats, error) {
	return s.store.Stats()
}

// todayProgress loads today's counters, normalized for the current day.
// This is the single rollover point; stale counters from a previous day are
// read as zero.
func (s *Service) todayProgress() (models.DailyProgress, error) {
	now := time.Now()
	progress, err := s.store.DailyProgress(models.DayKey(now))
	if err != nil {
		return models.DailyProgress{}, err
	}
	return progress.ForToday(now), nil
}
