package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/parlo-app/parlo-api/internal/catalog"
	"github.com/parlo-app/parlo-api/internal/domain"
)

// ConvertConfig defines how a curator spreadsheet maps onto catalog cards.
// Columns are spreadsheet letters, so the defaults read a sheet laid out as
// term, meaning, example, category, difficulty.
type ConvertConfig struct {
	InputPath  string
	OutputPath string
	SheetName  string
	StartRow   int

	TermColumn       string
	MeaningColumn    string
	ExampleColumn    string
	CategoryColumn   string
	DifficultyColumn string
}

// DefaultConvertConfig returns a ConvertConfig for the standard curator
// sheet layout with a header row.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		SheetName:        "Sheet1",
		StartRow:         2,
		TermColumn:       "A",
		MeaningColumn:    "B",
		ExampleColumn:    "C",
		CategoryColumn:   "D",
		DifficultyColumn: "E",
	}
}

// ConvertResult summarizes a conversion run. Rows that fail to convert are
// skipped and reported in Errors rather than aborting the run.
type ConvertResult struct {
	TotalProcessed int
	Converted      int
	Skipped        int
	Errors         []string
}

func convertCmd() *cobra.Command {
	cfg := DefaultConvertConfig()

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert a curator spreadsheet into catalog YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, result, err := readSpreadsheet(cfg)
			if err != nil {
				return err
			}

			for _, rowErr := range result.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), rowErr)
			}

			cat, err := catalog.New(cards)
			if err != nil {
				return fmt.Errorf("converted cards failed validation: %w", err)
			}

			if err := writeCatalog(cfg.OutputPath, cards); err != nil {
				return err
			}

			fmt.Printf("%s: %d rows processed, %d cards written, %d skipped\n",
				cfg.InputPath, result.TotalProcessed, cat.Len(), result.Skipped)
			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&cfg.InputPath, "input", "i", "", "Spreadsheet to convert (.xlsx or .csv)")
	c.Flags().StringVarP(&cfg.OutputPath, "output", "o", "", "Catalog YAML file to write")
	c.Flags().StringVar(&cfg.SheetName, "sheet", cfg.SheetName, "Worksheet to read")
	c.Flags().IntVar(&cfg.StartRow, "start-row", cfg.StartRow, "First data row (1-based)")
	c.Flags().StringVar(&cfg.TermColumn, "term-column", cfg.TermColumn, "Column holding the term")
	c.Flags().StringVar(&cfg.MeaningColumn, "meaning-column", cfg.MeaningColumn, "Column holding the meaning")
	c.Flags().StringVar(&cfg.ExampleColumn, "example-column", cfg.ExampleColumn, "Column holding the example sentence")
	c.Flags().StringVar(&cfg.CategoryColumn, "category-column", cfg.CategoryColumn, "Column holding the category")
	c.Flags().StringVar(&cfg.DifficultyColumn, "difficulty-column", cfg.DifficultyColumn, "Column holding the difficulty")
	_ = c.MarkFlagRequired("input")
	_ = c.MarkFlagRequired("output")

	return c
}

// readSpreadsheet reads the configured input and converts its rows to cards.
// The format is chosen by file extension: .csv files are parsed as CSV,
// everything else is opened as an Excel workbook.
func readSpreadsheet(config ConvertConfig) ([]domain.VocabularyCard, *ConvertResult, error) {
	ext := strings.ToLower(filepath.Ext(config.InputPath))
	if ext == ".csv" {
		return readCSV(config)
	}
	return readExcel(config)
}

func readExcel(config ConvertConfig) ([]domain.VocabularyCard, *ConvertResult, error) {
	f, err := excelize.OpenFile(config.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %s: %w", config.SheetName, err)
	}

	return rowsToCards(rows, config)
}

func readCSV(config ConvertConfig) ([]domain.VocabularyCard, *ConvertResult, error) {
	f, err := os.Open(config.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening spreadsheet: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV: %w", err)
	}

	return rowsToCards(rows, config)
}

// rowsToCards converts spreadsheet rows into cards, skipping rows before
// StartRow and collecting per-row failures. Duplicate terms keep the first
// occurrence.
func rowsToCards(rows [][]string, config ConvertConfig) ([]domain.VocabularyCard, *ConvertResult, error) {
	result := &ConvertResult{}
	cards := make([]domain.VocabularyCard, 0, len(rows))
	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow {
			continue
		}
		if rowIsBlank(row) {
			continue
		}
		result.TotalProcessed++

		card, err := cardFromRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if firstRow, dup := seen[card.ID]; dup {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate of row %d (%s)", rowNum, firstRow, card.ID))
			continue
		}
		seen[card.ID] = rowNum

		cards = append(cards, card)
		result.Converted++
	}

	return cards, result, nil
}

func cardFromRow(row []string, config ConvertConfig) (domain.VocabularyCard, error) {
	term := cellValue(row, config.TermColumn)
	if term == "" {
		return domain.VocabularyCard{}, errors.New("term cannot be empty")
	}

	meaning := cellValue(row, config.MeaningColumn)
	if meaning == "" {
		return domain.VocabularyCard{}, errors.New("meaning cannot be empty")
	}

	rawCategory := cellValue(row, config.CategoryColumn)
	category := domain.Category(strings.ReplaceAll(strings.ToLower(rawCategory), " ", "_"))
	if !category.Valid() {
		return domain.VocabularyCard{}, fmt.Errorf("unknown category %q", rawCategory)
	}

	difficulty := domain.Difficulty(strings.ToLower(cellValue(row, config.DifficultyColumn)))
	if difficulty == "" {
		difficulty = domain.DifficultyBeginner
	}
	if !difficulty.Valid() {
		return domain.VocabularyCard{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	id := slugify(term)
	if id == "" {
		return domain.VocabularyCard{}, fmt.Errorf("term %q does not produce a usable ID", term)
	}

	return domain.VocabularyCard{
		ID:         id,
		Term:       term,
		Meaning:    meaning,
		Example:    cellValue(row, config.ExampleColumn),
		Category:   category,
		Difficulty: difficulty,
	}, nil
}

// cellValue returns the trimmed value of the given column in a row, or the
// empty string when the row is too short. Sheet rows drop trailing empty
// cells, so short rows are normal.
func cellValue(row []string, column string) string {
	index := columnToIndex(column)
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// columnToIndex converts a spreadsheet column letter such as "A" or "AB"
// into a zero-based index. Unrecognized input yields -1.
func columnToIndex(column string) int {
	index := 0
	for _, r := range strings.ToUpper(column) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		index = index*26 + int(r-'A') + 1
	}
	return index - 1
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// slugify derives a card ID from a term: lowercase, runs of non-alphanumeric
// characters become single hyphens, and apostrophes vanish so "Where's"
// becomes "wheres".
func slugify(term string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(term) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingSep = false
		case r == '\'':
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// catalogDocument mirrors the YAML layout the catalog package reads.
type catalogDocument struct {
	Cards []domain.VocabularyCard `yaml:"cards"`
}

func writeCatalog(path string, cards []domain.VocabularyCard) error {
	data, err := yaml.Marshal(catalogDocument{Cards: cards})
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	header := []byte("# Vocabulary catalog. File order is the canonical card order.\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}
