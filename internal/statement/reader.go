package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCSV reads a full activity statement into memory as a table of string
// cells. Statements mix an unstructured header/footer with the fixed-width
// trade section, so rows are allowed to vary in width and quoting is lax.
func LoadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open statement: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadTable(f)
}

// ReadTable decodes CSV rows from r with the relaxed settings statements need.
func ReadTable(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // header/footer rows vary in width
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read statement row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
