package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoRuns is returned when an operation needs saved runs and there are none.
var ErrNoRuns = errors.New("no saved runs")

// Store defines the interface for storing benchmark runs.
type Store interface {
	Save(run Run) error
	LoadLatest() (*Run, error)
	LoadAll() ([]Run, error)
	Close() error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(run Run) error {
	runs, err := s.LoadAll()
	if err != nil {
		return err
	}

	runs = append(runs, run)

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runs: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) LoadAll() ([]Run, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Run{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return []Run{}, nil
	}

	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *FileStore) LoadLatest() (*Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

func (s *FileStore) Close() error { return nil }

// LastTwo returns the two most recent runs of store, older first.
func LastTwo(store Store) (prev, curr Run, err error) {
	runs, err := store.LoadAll()
	if err != nil {
		return Run{}, Run{}, err
	}
	if len(runs) < 2 {
		return Run{}, Run{}, fmt.Errorf("%w: need two runs to compare, have %d", ErrNoRuns, len(runs))
	}
	return runs[len(runs)-2], runs[len(runs)-1], nil
}
