package content

import (
	"strings"

	"github.com/google/uuid"

	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// ExtractCardsFromText scans plain text for card patterns, one per line.
// Supported patterns:
//  1. "Front :: Back" (simple Anki style)
//  2. "Q: question A: answer"
//
// Each match becomes a basic card in its initial scheduling state.
func ExtractCardsFromText(deckID, text string) []models.Flashcard {
	var cards []models.Flashcard

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "::") {
			parts := strings.Split(line, "::")
			front := strings.TrimSpace(parts[0])
			back := strings.TrimSpace(parts[1])
			cards = append(cards, models.NewFlashcard(uuid.NewString(), deckID, front, back, models.CardTypeBasic))
			continue
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "q:") && strings.Contains(lower, "a:") {
			answerAt := strings.Index(lower, "a:")
			question := strings.TrimSpace(line[len("q:"):answerAt])
			answer := strings.TrimSpace(line[answerAt+len("a:"):])
			if question != "" && answer != "" {
				cards = append(cards, models.NewFlashcard(uuid.NewString(), deckID, question, answer, models.CardTypeBasic))
			}
		}
	}

	return cards
}
