package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Register defines tabular export content for the patent register.
type Register struct {
	Headers []string
	Rows    [][]string
}

// CSVExporter renders Register records into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the register.
func (e *CSVExporter) Render(reg Register) ([]byte, error) {
	if len(reg.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(reg.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range reg.Rows {
		record := make([]string, len(reg.Headers))
		for i := range reg.Headers {
			if i < len(row) {
				record[i] = row[i]
			}
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
