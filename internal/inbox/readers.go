package inbox

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// TextReader reads plain-text dumps where messages are separated by one or
// more blank lines. Lines inside a message are kept.
type TextReader struct{}

// Format returns the handled extension.
func (TextReader) Format() string { return "txt" }

// Read splits r into messages.
func (TextReader) Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var msgs []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			msgs = append(msgs, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning text: %w", err)
	}
	flush()
	return msgs, nil
}

// bodyColumns are header names, compared case-insensitively, that hold the
// message text in common SMS backup exports.
var bodyColumns = []string{"body", "message", "text", "sms", "content"}

// CSVReader reads SMS backup CSVs with a header row naming the body column.
type CSVReader struct{}

// Format returns the handled extension.
func (CSVReader) Format() string { return "csv" }

// Read returns the non-empty body cells.
func (CSVReader) Read(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading SMS CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := bodyColumn(rows[0])
	if col < 0 {
		return nil, fmt.Errorf("no message column in header %q (want one of %s)",
			strings.Join(rows[0], ","), strings.Join(bodyColumns, ", "))
	}

	var msgs []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if body := strings.TrimSpace(row[col]); body != "" {
			msgs = append(msgs, body)
		}
	}
	return msgs, nil
}

func bodyColumn(header []string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		for _, want := range bodyColumns {
			if strings.EqualFold(h, want) {
				return i
			}
		}
	}
	return -1
}
