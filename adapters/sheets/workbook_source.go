package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"paydash/domain/ledger"
)

// WorkbookSource reads a local .xlsx or .csv file. It exists for offline
// operation and for replaying a downloaded sheet through the exact same
// pipeline as the live sources.
type WorkbookSource struct {
	filePath string
	sheet    string // empty means first sheet
	fileType string // "xlsx" or "csv"
}

// NewWorkbookSource creates a workbook source for the given file. For
// xlsx files an empty sheet name selects the workbook's first sheet.
func NewWorkbookSource(filePath, sheet string) *WorkbookSource {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &WorkbookSource{filePath: filePath, sheet: sheet, fileType: fileType}
}

// Name identifies this source in logs and refresh reports
func (s *WorkbookSource) Name() string {
	return "workbook:" + filepath.Base(s.filePath)
}

// Fetch reads the configured file into a row-set
func (s *WorkbookSource) Fetch(ctx context.Context) (*ledger.RowSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: workbook not found: %s", ledger.ErrNoData, s.filePath)
	}

	switch s.fileType {
	case "csv":
		return s.fetchCSV()
	default:
		return s.fetchExcel()
	}
}

func (s *WorkbookSource) fetchCSV() (*ledger.RowSet, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		return nil, err
	}
	log.Printf("[WorkbookSource] CSV file processed (%d columns, %d rows)", len(rows.Headers), len(rows.Rows))
	return rows, nil
}

func (s *WorkbookSource) fetchExcel() (*ledger.RowSet, error) {
	f, err := excelize.OpenFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", ledger.ErrEmptySheet, sheet)
	}

	headers := make([]string, 0, len(raw[0]))
	for _, h := range raw[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	rows := make([]ledger.RawRow, 0, len(raw)-1)
	for _, record := range raw[1:] {
		row := make(ledger.RawRow, len(headers))
		empty := true
		for j, header := range headers {
			value := ""
			if j < len(record) {
				value = strings.TrimSpace(record[j])
			}
			if value != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	log.Printf("[WorkbookSource] sheet %q processed (%d columns, %d rows)", sheet, len(headers), len(rows))
	return &ledger.RowSet{Headers: headers, Rows: rows}, nil
}

// writeCSV is the inverse of parseCSV, used by tests to round-trip
// fixture files
func writeCSV(path string, rs *ledger.RowSet) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(rs.Headers); err != nil {
		return err
	}
	for _, row := range rs.Rows {
		record := make([]string, len(rs.Headers))
		for i, h := range rs.Headers {
			record[i] = row[h]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
