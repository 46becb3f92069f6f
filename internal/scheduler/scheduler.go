package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/otavio0machado/Nexus-Study/internal/session"
)

// Default window for study reminders
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier interface for delivering study reminders
type Notifier interface {
	SendReminder(dueCount int) error
}

// Scheduler manages the recurring due-card check
type Scheduler struct {
	scheduler *gocron.Scheduler
	sessions  *session.Service
	notifier  Notifier
}

// New creates a new scheduler instance
func New(sessions *session.Service, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		sessions:  sessions,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check for cards that became due
	s.scheduler.Every(1).Hour().Do(s.checkDueCards)

	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkDueCards counts due cards and sends a reminder when inside the
// configured notification window
func (s *Scheduler) checkDueCards() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}

	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminder",
			currentHour, startHour, endHour)
		return
	}

	counts, err := s.sessions.Counts("")
	if err != nil {
		log.Printf("Error counting due cards: %v", err)
		return
	}

	due := counts.Learning + counts.Review
	if due > 0 {
		if err := s.notifier.SendReminder(due); err != nil {
			log.Printf("Error sending reminder: %v", err)
		}
	}
}

// RunManualCheck forces a due-card check regardless of the schedule
func (s *Scheduler) RunManualCheck() error {
	counts, err := s.sessions.Counts("")
	if err != nil {
		return err
	}

	due := counts.Learning + counts.Review
	if due > 0 {
		return s.notifier.SendReminder(due)
	}

	return nil
}
