package models

// Settings holds the scheduling parameters supplied to every scheduler call.
// Values are immutable from the scheduler's point of view; the caller owns storage.
type Settings struct {
	// Ordered minute-durations a new card passes through before graduating
	LearningSteps []float64 `json:"learning_steps"`
	// Days assigned on first graduation out of learning
	GraduatingInterval float64 `json:"graduating_interval" db:"graduating_interval"`
	// Multiplier applied on "easy" ratings
	EasyBonus float64 `json:"easy_bonus" db:"easy_bonus"`
	// Lapse count at which a review card auto-suspends
	LeechThreshold int `json:"leech_threshold" db:"leech_threshold"`
	// Expected max response latency in ms; 3x over downgrades good/easy ratings
	ReactionTimeTarget int64 `json:"reaction_time_target" db:"reaction_time_target"`
	MaxNewPerDay       int   `json:"max_new_per_day" db:"max_new_per_day"`
	MaxReviewsPerDay   int   `json:"max_reviews_per_day" db:"max_reviews_per_day"`
}

// DefaultSettings returns the scheduling parameters used until the user changes them
func DefaultSettings() Settings {
	return Settings{
		LearningSteps:      []float64{1, 10},
		GraduatingInterval: 1,
		EasyBonus:          1.3,
		LeechThreshold:     8,
		ReactionTimeTarget: 5000,
		MaxNewPerDay:       20,
		MaxReviewsPerDay:   100,
	}
}
