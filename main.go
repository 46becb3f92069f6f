package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/otavio0machado/Nexus-Study/internal/content"
	"github.com/otavio0machado/Nexus-Study/internal/database"
	"github.com/otavio0machado/Nexus-Study/internal/excel"
	"github.com/otavio0machado/Nexus-Study/internal/scheduler"
	"github.com/otavio0machado/Nexus-Study/internal/session"
	"github.com/otavio0machado/Nexus-Study/internal/spaced_repetition"
	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	sessions := session.New(database.NewStore())

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return
	}

	var err error
	switch args[0] {
	case "study":
		err = runStudy(sessions, optionalArg(args, 1))
	case "queue":
		err = printQueue(sessions, optionalArg(args, 1))
	case "stats":
		err = printStats(sessions)
	case "import":
		if len(args) < 2 {
			log.Fatal("Usage: nexus-study import <file.xlsx|file.csv>")
		}
		err = runImport(args[1])
	case "export":
		if len(args) < 2 {
			log.Fatal("Usage: nexus-study export <file.xlsx|file.csv> [deck-id]")
		}
		err = excel.ExportDeck(optionalArg(args, 2), args[1])
		if err == nil {
			log.Printf("Exported to %s", args[1])
		}
	case "watch":
		runWatch(sessions)
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func usage() {
	fmt.Println("Usage: nexus-study <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  study [deck-id]              Review the cards due now")
	fmt.Println("  queue [deck-id]              Show what is due without studying")
	fmt.Println("  stats                        Show XP, level and streak")
	fmt.Println("  import <file.xlsx|file.csv>  Import cards (front, back, deck columns)")
	fmt.Println("  export <file> [deck-id]      Export cards to xlsx or csv")
	fmt.Println("  watch                        Run hourly due-card reminders")
}

func optionalArg(args []string, index int) string {
	if index < len(args) {
		return args[index]
	}
	return ""
}

// runStudy drives one interactive study session over the current queue
func runStudy(sessions *session.Service, deckID string) error {
	queue, err := sessions.StudyQueue(deckID)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		fmt.Println("Nothing to study right now.")
		return nil
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%d cards to study. Rate each answer: 1=again 2=hard 3=good 4=easy, q to quit.\n\n", len(queue))

	for _, card := range queue {
		fmt.Println("Q:", questionSide(card))
		fmt.Print("   (press Enter to reveal) ")
		if _, err := reader.ReadString('\n'); err != nil {
			return err
		}
		started := time.Now()

		fmt.Println("A:", answerSide(card))
		fmt.Print("   rating> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "q" {
			break
		}

		rating, ok := parseRating(input)
		if !ok {
			fmt.Println("   unknown rating, card skipped")
			continue
		}

		timeTaken := time.Since(started).Milliseconds()
		result, err := sessions.ReviewCard(card.ID, rating, timeTaken)
		if err != nil {
			return err
		}
		fmt.Printf("   -> %s, due %s\n\n", result.Card.Status, result.Card.DueDate.Format("2006-01-02 15:04"))
	}

	stats, err := sessions.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("Session done. XP %d, level %d, streak %d days.\n", stats.XP, stats.Level, stats.Streak)
	return nil
}

func questionSide(card models.Flashcard) string {
	if card.CardType == models.CardTypeCloze {
		return content.MaskCloze(card.Front)
	}
	return card.Front
}

func answerSide(card models.Flashcard) string {
	if card.CardType == models.CardTypeCloze {
		return content.RenderClozeAnswer(card.Front)
	}
	return card.Back
}

func parseRating(input string) (spaced_repetition.Rating, bool) {
	switch input {
	case "1", "again":
		return spaced_repetition.RatingAgain, true
	case "2", "hard":
		return spaced_repetition.RatingHard, true
	case "3", "good":
		return spaced_repetition.RatingGood, true
	case "4", "easy":
		return spaced_repetition.RatingEasy, true
	}
	return "", false
}

func printQueue(sessions *session.Service, deckID string) error {
	counts, err := sessions.Counts(deckID)
	if err != nil {
		return err
	}
	queue, err := sessions.StudyQueue(deckID)
	if err != nil {
		return err
	}

	fmt.Printf("New: %d  Learning: %d  Review: %d  Suspended: %d\n",
		counts.New, counts.Learning, counts.Review, counts.Suspended)
	fmt.Printf("Queue for today: %d cards\n", len(queue))
	return nil
}

func printStats(sessions *session.Service) error {
	stats, err := sessions.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("XP: %d\nLevel: %d\nStreak: %d days\nCards learned: %d\n",
		stats.XP, stats.Level, stats.Streak, stats.CardsLearned)
	if !stats.LastStudyDate.IsZero() {
		fmt.Printf("Last studied: %s\n", stats.LastStudyDate.Format("2006-01-02 15:04"))
	}
	return nil
}

func runImport(filePath string) error {
	config := excel.DefaultImportConfig()
	config.FilePath = filePath

	result, err := excel.ImportCards(config)
	if err != nil {
		return err
	}

	log.Printf("Import finished: %d processed, %d created, %d updated, %d skipped, %d decks created",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped, result.DecksCreated)
	for _, e := range result.Errors {
		log.Printf("Import warning: %s", e)
	}
	return nil
}

// consoleNotifier prints study reminders to the terminal
type consoleNotifier struct{}

func (consoleNotifier) SendReminder(dueCount int) error {
	log.Printf("You have %d cards ready for review", dueCount)
	return nil
}

// runWatch keeps the reminder scheduler running until interrupted
func runWatch(sessions *session.Service) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sched := scheduler.New(sessions, consoleNotifier{})
	sched.Start()
	defer sched.Stop()

	// Report immediately on startup, then hourly
	if err := sched.RunManualCheck(); err != nil {
		log.Printf("Error checking due cards: %v", err)
	}

	log.Println("Watching for due cards. Press Ctrl+C to stop.")
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}
