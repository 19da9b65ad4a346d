package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ovpkit/domain/core"
	"ovpkit/domain/histogram"
	"ovpkit/ports"
)

// titleColumns are the column names checked, in order, for a job-title
// label. The title is informational only and may be absent.
var titleColumns = []string{"Job Title", "Title", "Occupation"}

// DataReader handles reading Excel and CSV input files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadData reads data from Excel or CSV files into structured format
func (r *DataReader) ReadData() (*TableData, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	case "xlsx":
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the first sheet of the workbook into structured format
func (r *DataReader) readExcelData() (*TableData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[DataReader] Sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*TableData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into TableData format
func (r *DataReader) processRows(rows [][]string) (*TableData, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRowData
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRowData)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &TableData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}

// Records reads the input file and extracts cleaned job-title records:
// the score and headcount columns are coerced to numbers, rows with
// unparseable scores or non-positive headcounts are dropped and counted.
func (r *DataReader) Records(scoreColumn, headcountColumn string) ([]histogram.Record, ports.CleaningStats, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, ports.CleaningStats{}, err
	}
	return ExtractRecords(data, scoreColumn, headcountColumn)
}

// ExtractRecords cleans an already-loaded table into histogram records.
func ExtractRecords(data *TableData, scoreColumn, headcountColumn string) ([]histogram.Record, ports.CleaningStats, error) {
	stats := ports.CleaningStats{TotalRows: len(data.Rows)}

	var missing []string
	for _, required := range []string{scoreColumn, headcountColumn} {
		if !hasHeader(data.Headers, required) {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, stats, core.NewMissingColumnError(missing, data.Headers)
	}

	titleColumn := ""
	for _, candidate := range titleColumns {
		if hasHeader(data.Headers, candidate) {
			titleColumn = candidate
			break
		}
	}

	records := make([]histogram.Record, 0, len(data.Rows))
	for _, row := range data.Rows {
		score, ok := ParseNumeric(row[scoreColumn])
		if !ok {
			stats.DroppedScore++
			continue
		}
		headcount, ok := ParseNumeric(row[headcountColumn])
		if !ok || headcount <= 0 {
			stats.DroppedHeadcount++
			continue
		}
		records = append(records, histogram.Record{
			Title:     row[titleColumn],
			AvgOVP:    score,
			Headcount: headcount,
		})
	}
	stats.Kept = len(records)

	if len(records) == 0 {
		return nil, stats, core.ErrNoValidRows
	}

	log.Printf("[DataReader] Cleaned %d rows: kept %d, dropped %d (score) + %d (headcount)",
		stats.TotalRows, stats.Kept, stats.DroppedScore, stats.DroppedHeadcount)

	return records, stats, nil
}

func hasHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}
