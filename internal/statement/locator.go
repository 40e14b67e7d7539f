package statement

import (
	"fmt"
	"strings"
)

// SectionNotFoundError reports that a labeled section of the statement could
// not be bounded: the label never appears in column 0, or the run of labeled
// rows extends to the end of the table without a terminating row.
//
// This error is fatal for the whole run; no partial output is produced.
type SectionNotFoundError struct {
	Label  string
	Reason string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found: %s", e.Label, e.Reason)
}

// LocateSection scans column 0 of the report top-to-bottom and returns the
// half-open row range [start, end) of the first contiguous run of rows whose
// column-0 value equals label.
//
// Behavior:
//   - start is the first row whose column-0 value equals label.
//   - end is the first subsequent row whose column-0 value differs.
//   - Only the first contiguous run is used; a later non-contiguous run of the
//     same label is ignored.
//
// Returns:
//   - *SectionNotFoundError when the label is absent, or present but the run
//     never terminates before the end of the table.
func LocateSection(report [][]string, label string) (int, int, error) {
	start := -1
	for i, row := range report {
		v := Cell(row, 0)
		if start < 0 {
			if v == label {
				start = i
			}
			continue
		}
		if v != label {
			return start, i, nil
		}
	}

	if start < 0 {
		return 0, 0, &SectionNotFoundError{Label: label, Reason: "label absent from column 0"}
	}
	return 0, 0, &SectionNotFoundError{Label: label, Reason: "labeled rows run to end of table without terminating"}
}

// Cell returns the trimmed value at index i of a row, or "" when the row is
// too short. Statement rows outside the located section vary in width, so
// out-of-range reads are routine, not errors.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
