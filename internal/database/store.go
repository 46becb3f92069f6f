package database

import "github.com/otavio0machado/Nexus-Study/pkg/models"

// Store bundles the repositories behind the narrow interface the study
// session layer depends on (session.Store).
type Store struct {
	cards    *CardRepository
	settings *SettingsRepository
	stats    *StatsRepository
	progress *DailyProgressRepository
}

// NewStore creates a store over the global connection
func NewStore() *Store {
	return &Store{
		cards:    NewCardRepository(),
		settings: NewSettingsRepository(),
		stats:    NewStatsRepository(),
		progress: NewDailyProgressRepository(),
	}
}

// Card returns a single card by id
func (s *Store) Card(id string) (*models.Flashcard, error) {
	return s.cards.GetByID(id)
}

// Cards returns the cards of one deck, or of every deck when deckID is empty
func (s *Store) Cards(deckID string) ([]models.Flashcard, error) {
	if deckID == "" {
		return s.cards.GetAll()
	}
	return s.cards.GetByDeck(deckID)
}

// SaveCard persists an updated card
func (s *Store) SaveCard(card *models.Flashcard) error {
	return s.cards.Update(card)
}

// SetCardStatus overwrites a card's status
func (s *Store) SetCardStatus(id string, status models.CardStatus) error {
	return s.cards.SetStatus(id, status)
}

// Settings returns the active scheduling settings
func (s *Store) Settings() (models.Settings, error) {
	return s.settings.Get()
}

// Stats returns the user's gamification state
func (s *Store) Stats() (models.UserStats, error) {
	return s.stats.Get()
}

// SaveStats persists the user's gamification state
func (s *Store) SaveStats(stats models.UserStats) error {
	return s.stats.Save(stats)
}

// DailyProgress returns the study counters for a date key
func (s *Store) DailyProgress(date string) (models.DailyProgress, error) {
	return s.progress.Get(date)
}

// SaveDailyProgress persists the study counters
func (s *Store) SaveDailyProgress(progress models.DailyProgress) error {
	return s.progress.Save(progress)
}
