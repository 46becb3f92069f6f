package models

import "time"

// DayKeyFormat is the layout of the daily-progress date key
const DayKeyFormat = "2006-01-02"

// DayKey formats a time as the daily-progress date key
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// DailyProgress counts how many cards were studied under today's quotas.
// Counters reset lazily whenever the stored date key is not today's.
type DailyProgress struct {
	Date          string `json:"date" db:"date"`
	NewStudied    int    `json:"new_studied" db:"new_studied"`
	ReviewStudied int    `json:"review_studied" db:"review_studied"`
}

// ForToday returns the counters that apply to the day containing now.
// A stale date key counts as zero studied; the receiver is not mutated.
func (p DailyProgress) ForToday(now time.Time) DailyProgress {
	if p.Date != DayKey(now) {
		return DailyProgress{Date: DayKey(now)}
	}
	return p
}
