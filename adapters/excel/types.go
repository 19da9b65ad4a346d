package excel

// RawRowData represents a row of raw table data as string key-value pairs
type RawRowData map[string]string

// TableData represents the complete input dataset
type TableData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}
