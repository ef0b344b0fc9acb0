// Package progress persists the pipeline cursor so a crashed run resumes
// where it left off.
package progress

import (
	"encoding/json"
	"fmt"
	"os"
)

// Progress is the durable cursor of a run. LastIndex is the next unconsumed
// 0-based offset into the word list; Batches holds every batch number that
// has been finalized, including permanently failed ones.
type Progress struct {
	LastIndex int   `json:"last_index"`
	Processed int   `json:"processed"`
	Batches   []int `json:"batches"`
}

// Completed reports whether batch n has already been finalized.
func (p *Progress) Completed(n int) bool {
	for _, b := range p.Batches {
		if b == n {
			return true
		}
	}
	return false
}

// MarkCompleted records batch n as finalized. The set only grows.
func (p *Progress) MarkCompleted(n int) {
	if !p.Completed(n) {
		p.Batches = append(p.Batches, n)
	}
}

// Done reports whether the cursor has consumed all total words.
func (p *Progress) Done(total int) bool {
	return p.LastIndex >= total
}

// Store loads and saves the progress file.
type Store struct {
	Path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the persisted cursor. A missing or corrupt file is a fresh
// start, not an error.
func (s *Store) Load() (*Progress, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Progress{}, nil
		}
		return nil, fmt.Errorf("read progress %s: %w", s.Path, err)
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return &Progress{}, nil
	}
	return &p, nil
}

// Save persists the cursor. Called after every batch attempt so a crash
// loses at most the in-flight batch.
func (s *Store) Save(p *Progress) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write progress %s: %w", s.Path, err)
	}
	return nil
}
