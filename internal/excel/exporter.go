package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/otavio0machado/Nexus-Study/internal/database"
	"github.com/otavio0machado/Nexus-Study/pkg/models"
)

var exportHeader = []string{"Front", "Back", "Type", "Status", "Interval (days)", "Ease", "Reps", "Lapses", "Due Date"}

// ExportDeck writes a deck's cards to an Excel or CSV file, chosen by the
// file extension. An empty deckID exports every card.
func ExportDeck(deckID, filePath string) error {
	cardRepo := database.NewCardRepository()

	var cards []models.Flashcard
	var err error
	if deckID == "" {
		cards, err = cardRepo.GetAll()
	} else {
		cards, err = cardRepo.GetByDeck(deckID)
	}
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".csv" {
		return exportToCSV(cards, filePath)
	}
	return exportToExcel(cards, filePath)
}

func exportToExcel(cards []models.Flashcard, filePath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %v", err)
		}
	}

	for i, card := range cards {
		values := cardRowValues(card)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write card row: %v", err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save Excel file: %v", err)
	}
	return nil
}

func exportToCSV(cards []models.Flashcard, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	for _, card := range cards {
		values := cardRowValues(card)
		record := make([]string, len(values))
		for i, value := range values {
			record[i] = fmt.Sprintf("%v", value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card row: %v", err)
		}
	}

	return writer.Error()
}

func cardRowValues(card models.Flashcard) []interface{} {
	return []interface{}{
		card.Front,
		card.Back,
		string(card.CardType),
		string(card.Status),
		strconv.FormatFloat(card.Interval, 'f', 4, 64),
		strconv.FormatFloat(card.EaseFactor, 'f', 2, 64),
		card.Reps,
		card.Lapses,
		card.DueDate.Format(time.RFC3339),
	}
}
