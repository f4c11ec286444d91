package logscan

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the report to w as three CSV sections: requests per IP,
// the most accessed endpoint, and suspicious activity. Each section is a
// title row, a column header row, and the data rows. The first two sections
// are followed by a blank row.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"Requests per IP"},
		{"IP Address", "Request Count"},
	}
	records = append(records, rows(r.RequestsPerIP)...)
	records = append(records,
		[]string{},
		[]string{"Most Accessed Endpoint"},
		[]string{"Endpoint", "Access Count"},
		[]string{r.MostFrequentEndpoint.Key, strconv.Itoa(r.MostFrequentEndpoint.Count)},
		[]string{},
		[]string{"Suspicious Activity"},
		[]string{"IP Address", "Failed Login Count"},
	)
	records = append(records, rows(r.SuspiciousActivity)...)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// SaveCSV exports the report to the named file, replacing any previous
// contents. The CSV is rendered in full before the file is touched.
func (r *Report) SaveCSV(path string) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, r); err != nil {
		return err
	}
	if _, err := NewPipe().WithReader(&buf).WriteFile(path); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	return nil
}
