package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportDirectory is where generated spreadsheets are written; the cleanup
// job expires them after a day.
const ExportDirectory = "./public/files"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel creates an Excel file from pre-rendered rows and returns the
// saved file path. The caller renders each record to a row so this stays free
// of reflection over model structs.
func GenerateExcel(fileNamePrefix string, headers []string, rows [][]string) (string, error) {
	if err := EnsureDirectoryExists(ExportDirectory); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error resolving header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return "", fmt.Errorf("error resolving cell: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error writing cell %s: %v", cell, err)
			}
		}
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", fileNamePrefix, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(ExportDirectory, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving excel file: %v", err)
	}

	return filePath, nil
}
