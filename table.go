package logscan

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// WriteTable writes headers and rows to w as a bordered text table, for
// example:
//
//	+------------+---------------+
//	| IP Address | Request Count |
//	+------------+---------------+
//	| 10.0.0.1   | 2             |
//	+------------+---------------+
//
// Every column is as wide as its longest cell, header included, and all
// cells are left-aligned. Rows with fewer cells than headers are padded with
// empty cells; extra cells are ignored.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := range widths {
			if i < len(row) {
				if n := utf8.RuneCountInString(row[i]); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	border := "+-" + strings.Join(dashes, "-+-") + "-+\n"
	line := func(cells []string) string {
		padded := make([]string, len(widths))
		for i, width := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			padded[i] = fmt.Sprintf("%-*s", width, cell)
		}
		return "| " + strings.Join(padded, " | ") + " |\n"
	}
	var b strings.Builder
	b.WriteString(border)
	b.WriteString(line(headers))
	b.WriteString(border)
	for _, row := range rows {
		b.WriteString(line(row))
	}
	b.WriteString(border)
	_, err := io.WriteString(w, b.String())
	return err
}
