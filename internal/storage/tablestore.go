package storage

import (
	"fmt"
	"sort"
	"sync"
)

// TableStore defines the sheet-level operations the pipeline needs: the
// persistence/presentation stub behind the computation. Sheets are recreated
// from scratch on every run; nothing survives the process.
//
// Column hiding is purely cosmetic bookkeeping for renderers that want to
// suppress the intermediate snapshot columns.
type TableStore interface {
	CreateSheet(name string) error
	DeleteSheet(name string)
	WriteRows(name string, rows [][]string) error
	Rows(name string) ([][]string, error)
	HideColumns(name string, cols ...int) error
	HiddenColumns(name string) []int
	Sheets() []string
}

type sheet struct {
	rows   [][]string
	hidden map[int]struct{}
}

type memoryStore struct {
	mu     sync.RWMutex
	sheets map[string]*sheet
}

// NewMemoryStore returns an empty in-memory TableStore. It is safe for
// concurrent use so API-mode requests can recompute without racing.
func NewMemoryStore() TableStore {
	return &memoryStore{sheets: make(map[string]*sheet)}
}

func (s *memoryStore) CreateSheet(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sheets[name]; ok {
		return fmt.Errorf("sheet %q already exists", name)
	}
	s.sheets[name] = &sheet{hidden: make(map[int]struct{})}
	return nil
}

// DeleteSheet removes a sheet. Deleting a missing sheet is a no-op, which
// lets every run unconditionally clear its computation sheets first.
func (s *memoryStore) DeleteSheet(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sheets, name)
}

func (s *memoryStore) WriteRows(name string, rows [][]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[name]
	if !ok {
		return fmt.Errorf("sheet %q does not exist", name)
	}
	for _, row := range rows {
		sh.rows = append(sh.rows, append([]string(nil), row...))
	}
	return nil
}

func (s *memoryStore) Rows(name string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q does not exist", name)
	}
	out := make([][]string, 0, len(sh.rows))
	for _, row := range sh.rows {
		out = append(out, append([]string(nil), row...))
	}
	return out, nil
}

func (s *memoryStore) HideColumns(name string, cols ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.sheets[name]
	if !ok {
		return fmt.Errorf("sheet %q does not exist", name)
	}
	for _, c := range cols {
		sh.hidden[c] = struct{}{}
	}
	return nil
}

func (s *memoryStore) HiddenColumns(name string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.sheets[name]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(sh.hidden))
	for c := range sh.hidden {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

func (s *memoryStore) Sheets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.sheets))
	for name := range s.sheets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
