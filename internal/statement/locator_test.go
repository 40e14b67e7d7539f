package statement

import (
	"errors"
	"testing"
)

func TestLocateSection_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		rows      [][]string
		label     string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{
			name: "simple run",
			rows: [][]string{
				{"Statement", "Header"},
				{"Trades", "Data"},
				{"Trades", "Data"},
				{"Fees", "Data"},
			},
			label:     "Trades",
			wantStart: 1,
			wantEnd:   3,
		},
		{
			name: "second run ignored",
			rows: [][]string{
				{"Trades"},
				{"Fees"},
				{"Trades"},
				{"Fees"},
			},
			label:     "Trades",
			wantStart: 0,
			wantEnd:   1,
		},
		{
			name:    "label absent",
			rows:    [][]string{{"Statement"}, {"Fees"}},
			label:   "Trades",
			wantErr: true,
		},
		{
			name:    "run never terminates",
			rows:    [][]string{{"Statement"}, {"Trades"}, {"Trades"}},
			label:   "Trades",
			wantErr: true,
		},
		{
			name:    "empty table",
			rows:    nil,
			label:   "Trades",
			wantErr: true,
		},
		{
			name: "short rows treated as empty column 0",
			rows: [][]string{
				{"Trades"},
				{},
			},
			label:     "Trades",
			wantStart: 0,
			wantEnd:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := LocateSection(tc.rows, tc.label)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got [%d,%d)", start, end)
				}
				var snf *SectionNotFoundError
				if !errors.As(err, &snf) {
					t.Fatalf("expected SectionNotFoundError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("range [%d,%d), want [%d,%d)", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestCell_OutOfRange(t *testing.T) {
	row := []string{" a ", "b"}
	if v := Cell(row, 0); v != "a" {
		t.Fatalf("want trimmed 'a', got %q", v)
	}
	if v := Cell(row, 5); v != "" {
		t.Fatalf("want empty for out-of-range, got %q", v)
	}
	if v := Cell(row, -1); v != "" {
		t.Fatalf("want empty for negative index, got %q", v)
	}
}
