package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/otavio0machado/Nexus-Study/internal/content"
	"github.com/otavio0machado/Nexus-Study/internal/database"
	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath    string // Path to the Excel or CSV file
	FrontColumn string // Column with the card front
	BackColumn  string // Column with the card back
	DeckColumn  string // Column with the deck title (optional per row)
	DefaultDeck string // Deck used when the deck column is empty
	SheetName   string // Name of the sheet to import
	StartRow    int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		FrontColumn: "A",
		BackColumn:  "B",
		DeckColumn:  "C",
		DefaultDeck: "Imported",
		SheetName:   "Sheet1",
		StartRow:    2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	DecksCreated   int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// importer carries the shared state of one import run
type importer struct {
	deckRepo *database.DeckRepository
	cardRepo *database.CardRepository
	deckMap  map[string]string            // lowercased deck title -> deck id
	cardMap  map[string]*models.Flashcard // deck id + "\x00" + lowercased front -> card
	result   *ImportResult
}

// ImportCards imports flashcards from an Excel or CSV file
func ImportCards(config ImportConfig) (*ImportResult, error) {
	imp, err := newImporter()
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return imp.importFromCSV(config)
	}
	return imp.importFromExcel(config)
}

func newImporter() (*importer, error) {
	imp := &importer{
		deckRepo: database.NewDeckRepository(),
		cardRepo: database.NewCardRepository(),
		deckMap:  make(map[string]string),
		cardMap:  make(map[string]*models.Flashcard),
		result:   &ImportResult{Errors: make([]string, 0)},
	}

	// Cache existing decks and cards so duplicates update instead of piling up
	decks, err := imp.deckRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing decks: %v", err)
	}
	for _, deck := range decks {
		imp.deckMap[strings.ToLower(deck.Title)] = deck.ID
	}

	cards, err := imp.cardRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get existing cards: %v", err)
	}
	for i := range cards {
		card := cards[i]
		imp.cardMap[cardKey(card.DeckID, card.Front)] = &card
	}

	return imp, nil
}

// importFromExcel imports cards from an Excel file
func (imp *importer) importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		imp.result.TotalProcessed++

		if err := imp.processRow(row, config); err != nil {
			imp.result.Errors = append(imp.result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return imp.result, nil
}

// importFromCSV imports cards from a CSV file
func (imp *importer) importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		imp.result.TotalProcessed++

		if err := imp.processRow(row, config); err != nil {
			imp.result.Errors = append(imp.result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return imp.result, nil
}

// processRow turns a single row into a created or updated card
func (imp *importer) processRow(row []string, config ImportConfig) error {
	var front, back, deckTitle string

	if colIdx := columnToIndex(config.FrontColumn); colIdx >= 0 && colIdx < len(row) {
		front = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.BackColumn); colIdx >= 0 && colIdx < len(row) {
		back = strings.TrimSpace(row[colIdx])
	}
	if config.DeckColumn != "" {
		if colIdx := columnToIndex(config.DeckColumn); colIdx >= 0 && colIdx < len(row) {
			deckTitle = strings.TrimSpace(row[colIdx])
		}
	}
	if deckTitle == "" {
		deckTitle = config.DefaultDeck
	}

	if front == "" {
		imp.result.Skipped++
		return nil
	}

	// Cloze-marked fronts don't need a back
	cardType := models.CardTypeBasic
	if content.HasCloze(front) {
		cardType = models.CardTypeCloze
	} else if back == "" {
		return fmt.Errorf("back cannot be empty")
	}

	deckID, err := imp.getOrCreateDeck(deckTitle)
	if err != nil {
		return err
	}

	// Update an existing card with the same front instead of duplicating it.
	// Scheduling state is left untouched.
	if existing, ok := imp.cardMap[cardKey(deckID, front)]; ok {
		existing.Back = back
		existing.CardType = cardType
		if err := imp.cardRepo.Update(existing); err != nil {
			return fmt.Errorf("failed to update card: %v", err)
		}
		imp.result.Updated++
		return nil
	}

	card := models.NewFlashcard(uuid.NewString(), deckID, front, back, cardType)
	if err := imp.cardRepo.Create(&card); err != nil {
		return fmt.Errorf("failed to create card: %v", err)
	}
	imp.cardMap[cardKey(deckID, front)] = &card
	imp.result.Created++

	return nil
}

// getOrCreateDeck gets a deck by title or creates a new one if it doesn't exist
func (imp *importer) getOrCreateDeck(title string) (string, error) {
	titleLower := strings.ToLower(strings.TrimSpace(title))
	if id, exists := imp.deckMap[titleLower]; exists {
		return id, nil
	}

	deck := &models.Deck{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now(),
	}
	if err := imp.deckRepo.Create(deck); err != nil {
		return "", fmt.Errorf("failed to create deck: %v", err)
	}

	imp.deckMap[titleLower] = deck.ID
	imp.result.DecksCreated++
	return deck.ID, nil
}

func cardKey(deckID, front string) string {
	return deckID + "\x00" + strings.ToLower(front)
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
