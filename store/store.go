// Package store persists weekly notes and display preferences as JSON
// files under a single data directory. It is the only component that
// touches the filesystem.
//
// Each week is one document named week_<year>_<weekNumber>.json. Writes
// go through a temp file and rename so a crashed write never leaves a
// half-written document behind. There is no cross-document transaction;
// for a single key, last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/snils/weeklynotes/note"
)

// Store provides access to the weekly-notes data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("empty data dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) weekPath(year, weekNumber int) string {
	return filepath.Join(s.dir, fmt.Sprintf("week_%d_%d.json", year, weekNumber))
}

// SaveWeek writes the week's document, replacing any existing document
// for the same key.
func (s *Store) SaveWeek(week note.Week) error {
	if week.Notes == nil {
		week.Notes = []note.Note{}
	}
	data, err := json.MarshalIndent(week, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal week %s: %w", week.Key(), err)
	}
	return s.writeFile(s.weekPath(week.Year, week.WeekNumber), data)
}

// LoadWeek reads the document for the given key. It returns
// ErrWeekNotFound when no document exists and a *CorruptError when the
// document cannot be parsed. Notes are sorted by order.
func (s *Store) LoadWeek(year, weekNumber int) (note.Week, error) {
	path := s.weekPath(year, weekNumber)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return note.Week{}, ErrWeekNotFound
	}
	if err != nil {
		return note.Week{}, fmt.Errorf("read week document: %w", err)
	}
	week, err := decodeWeek(data)
	if err != nil {
		return note.Week{}, &CorruptError{Path: path, Err: err}
	}
	return week, nil
}

// AllWeeks scans every week document in the data directory. Documents
// that fail to parse are skipped; the number skipped is reported so
// callers can surface the loss. Weeks are ordered by (year, weekNumber).
func (s *Store) AllWeeks() (weeks []note.Week, skipped int, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, 0, fmt.Errorf("scan data dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isWeekDocument(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			skipped++
			continue
		}
		week, err := decodeWeek(data)
		if err != nil {
			skipped++
			continue
		}
		weeks = append(weeks, week)
	}
	sortWeeks(weeks)
	return weeks, skipped, nil
}

// DeleteWeek removes the document for the given key. Missing documents
// are not an error.
func (s *Store) DeleteWeek(year, weekNumber int) error {
	err := os.Remove(s.weekPath(year, weekNumber))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete week document: %w", err)
	}
	return nil
}

func isWeekDocument(name string) bool {
	return strings.HasPrefix(name, "week_") && strings.HasSuffix(name, ".json")
}

func decodeWeek(data []byte) (note.Week, error) {
	var week note.Week
	if err := json.Unmarshal(data, &week); err != nil {
		return note.Week{}, err
	}
	for _, n := range week.Notes {
		if !n.Status.IsValid() {
			return note.Week{}, fmt.Errorf("unknown status %q", n.Status)
		}
	}
	if week.Notes == nil {
		week.Notes = []note.Note{}
	}
	week.SortNotes()
	return week, nil
}

func sortWeeks(weeks []note.Week) {
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})
}

// writeFile writes data atomically via a temp file in the same directory.
func (s *Store) writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()
	_, err = tmp.Write(data)
	if err1 := tmp.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
