// Package excel imports clips in bulk from spreadsheet files, so a library
// of clips can be prepared outside the app and loaded in one run.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/echoslice/internal/database"
	"github.com/example/echoslice/pkg/models"
)

// ImportConfig defines where clip fields live in the file.
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	VideoIDColumn string // Column with the YouTube video id
	StartColumn   string // Column with the clip start, in seconds
	EndColumn     string // Column with the clip end, in seconds
	TitleColumn   string // Column with the clip title
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration: columns
// A-D in video/start/end/title order, header row skipped.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:      path,
		VideoIDColumn: "A",
		StartColumn:   "B",
		EndColumn:     "C",
		TitleColumn:   "D",
		SheetName:     "Sheet1",
		StartRow:      2,
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportClips imports clips from an Excel or CSV file.
func ImportClips(ctx context.Context, store *database.Store, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(ctx, store, config)
	}
	return importFromExcel(ctx, store, config)
}

func importFromExcel(ctx context.Context, store *database.Store, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(ctx, store, row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

func importFromCSV(ctx context.Context, store *database.Store, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := processRow(ctx, store, row, config, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow turns one spreadsheet row into a clip. Rows without a video id
// are counted as skipped, not as errors.
func processRow(ctx context.Context, store *database.Store, row []string, config ImportConfig, result *ImportResult) error {
	videoID := cell(row, config.VideoIDColumn)
	if videoID == "" {
		result.Skipped++
		return nil
	}

	startSec, err := strconv.Atoi(cell(row, config.StartColumn))
	if err != nil {
		return fmt.Errorf("invalid start seconds: %w", err)
	}
	endSec, err := strconv.Atoi(cell(row, config.EndColumn))
	if err != nil {
		return fmt.Errorf("invalid end seconds: %w", err)
	}
	if endSec <= startSec {
		return fmt.Errorf("end (%d) must be after start (%d)", endSec, startSec)
	}

	clip := &models.Clip{
		VideoID:  videoID,
		StartSec: startSec,
		EndSec:   endSec,
		Title:    cell(row, config.TitleColumn),
	}
	if err := store.CreateClip(ctx, clip); err != nil {
		return err
	}
	result.Created++
	return nil
}

func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts a column letter ("A", "B", ... "AA") to a 0-based
// index.
func columnToIndex(column string) int {
	idx := 0
	for _, r := range strings.ToUpper(column) {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
