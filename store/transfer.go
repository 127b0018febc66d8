package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/snils/weeklynotes/note"
)

// ExportAll serializes every stored week, including empty ones, as a
// single JSON array ordered by week key.
func (s *Store) ExportAll() ([]byte, error) {
	weeks, _, err := s.AllWeeks()
	if err != nil {
		return nil, err
	}
	if weeks == nil {
		weeks = []note.Week{}
	}
	data, err := json.MarshalIndent(weeks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportTo writes the export document to the given destination path.
func (s *Store) ExportTo(path string) error {
	data, err := s.ExportAll()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import replaces the entire store with the weeks in the given export
// document. The payload is parsed before anything is deleted, so a
// malformed document leaves existing data untouched.
func (s *Store) Import(data []byte) error {
	var weeks []note.Week
	if err := json.Unmarshal(data, &weeks); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	for _, week := range weeks {
		for _, n := range week.Notes {
			if !n.Status.IsValid() {
				return fmt.Errorf("%w: unknown status %q in week %s", ErrInvalidArchive, n.Status, week.Key())
			}
		}
	}

	if err := s.clearWeeks(); err != nil {
		return err
	}

	for _, week := range weeks {
		week.SortNotes()
		if err := s.SaveWeek(week); err != nil {
			return err
		}
	}
	return nil
}

// clearWeeks removes every week document, including ones that no longer
// parse.
func (s *Store) clearWeeks() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("scan data dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isWeekDocument(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("delete week document: %w", err)
		}
	}
	return nil
}

// ImportFile reads and imports an export document from disk.
func (s *Store) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	return s.Import(data)
}
