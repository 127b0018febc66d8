// Package app implements the weekly-notes controller: it owns the
// UI-facing state and every mutation entry point, mediating between the
// note domain model, the store, and the presentation layer.
//
// An App serializes all state access behind a mutex. Its operations
// perform blocking file I/O and are expected to be dispatched off the
// UI event loop by the presentation layer (the TUI runs them inside
// tea.Cmd goroutines; the CLI runs them in the command process).
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	internalstrings "github.com/snils/weeklynotes/internal/strings"
	"github.com/snils/weeklynotes/internal/validation"
	"github.com/snils/weeklynotes/note"
	"github.com/snils/weeklynotes/store"
)

// ErrInvalidStatus indicates a status value is invalid.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidColorScheme indicates a color scheme value is invalid.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

// ErrNoImportPending indicates ConfirmImport was called without a
// requested import.
var ErrNoImportPending = errors.New("no import pending")

// ExportFileName is the default export destination inside the data dir.
const ExportFileName = "weekly_notes_export.json"

// Options configures a new App.
type Options struct {
	// HideClosed starts the session with closed notes hidden.
	HideClosed bool
}

// App is the single owner of UI-facing state.
type App struct {
	mu    sync.Mutex
	store *store.Store
	state State
}

// New creates an App backed by the given store and loads the current
// week and display preferences.
func New(st *store.Store, opts Options) *App {
	a := &App{store: st}
	year, weekNumber := note.CurrentWeek()
	a.state = State{
		Week:       note.NewWeek(year, weekNumber),
		HideClosed: opts.HideClosed,
		Scheme:     st.LoadColorScheme(),
		Colors:     st.LoadCustomColors(),
	}
	a.loadWeekLocked(year, weekNumber)
	return a
}

// State returns a snapshot of the current state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.clone()
}

// LoadCurrentWeek reloads the visible week from the store.
func (a *App) LoadCurrentWeek() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loadWeekLocked(a.state.Week.Year, a.state.Week.WeekNumber)
}

// NavigatePrevious moves to the week before the visible one, rolling
// back into the final ISO week of the previous year from week 1.
func (a *App) NavigatePrevious() {
	a.mu.Lock()
	defer a.mu.Unlock()
	year, weekNumber := note.PreviousWeek(a.state.Week.Year, a.state.Week.WeekNumber)
	a.loadWeekLocked(year, weekNumber)
}

// NavigateNext moves to the week after the visible one, rolling into
// week 1 of the next year past the year's final ISO week.
func (a *App) NavigateNext() {
	a.mu.Lock()
	defer a.mu.Unlock()
	year, weekNumber := note.NextWeek(a.state.Week.Year, a.state.Week.WeekNumber)
	a.loadWeekLocked(year, weekNumber)
}

// NavigateToDate jumps to the week containing the given date.
func (a *App) NavigateToDate(t time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	year, weekNumber := note.WeekOf(t)
	a.loadWeekLocked(year, weekNumber)
}

// NavigateToWeek jumps directly to the given week key.
func (a *App) NavigateToWeek(year, weekNumber int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loadWeekLocked(year, weekNumber)
}

// loadWeekLocked replaces the visible week with the stored document for
// the key, or an empty week when the document is missing or corrupt.
// Corrupt documents are recorded in LastErr; a missing document is the
// normal empty-week case.
func (a *App) loadWeekLocked(year, weekNumber int) {
	a.state.Loading = true
	week, err := a.store.LoadWeek(year, weekNumber)
	switch {
	case err == nil:
		a.state.LastErr = nil
	case errors.Is(err, store.ErrWeekNotFound):
		week = note.NewWeek(year, weekNumber)
		a.state.LastErr = nil
	default:
		week = note.NewWeek(year, weekNumber)
		a.state.LastErr = err
	}
	a.state.Week = week
	a.state.Loading = false
}

// AddNote appends a new empty note to the visible week and persists it.
// New notes start with the info status and an order at the end of the
// list.
func (a *App) AddNote() note.Note {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := note.New("", note.StatusInfo, len(a.state.Week.Notes))
	a.state.Week.Notes = append(a.state.Week.Notes, n)
	a.saveWeekLocked()
	return n
}

// UpdateContent sets the content of the note with the given id. Any note
// whose content is blank after the edit is removed from the list; empty
// notes are never retained, including blank notes created earlier.
func (a *App) UpdateContent(noteID, content string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.state.Week.Notes[:0]
	for _, n := range a.state.Week.Notes {
		if n.ID == noteID {
			n.Content = content
		}
		if internalstrings.IsBlank(n.Content) {
			continue
		}
		kept = append(kept, n)
	}
	a.state.Week.Notes = kept
	a.saveWeekLocked()
}

// CycleStatus advances the note's status to the next marker in the
// cycle and persists the week.
func (a *App) CycleStatus(noteID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, n := range a.state.Week.Notes {
		if n.ID == noteID {
			a.state.Week.Notes[i].Status = n.Status.Next()
			break
		}
	}
	a.saveWeekLocked()
}

// SetStatus sets the note's status directly and persists the week.
func (a *App) SetStatus(noteID string, status note.Status) error {
	if !status.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatus, status, note.ValidStatuses())
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, n := range a.state.Week.Notes {
		if n.ID == noteID {
			a.state.Week.Notes[i].Status = status
			break
		}
	}
	a.saveWeekLocked()
	return nil
}

// MoveToNextWeek removes the note from the visible week and appends it
// to the following week, dated at that week's Monday and ordered last.
// The two documents are written separately; there is no transaction
// spanning them, so a crash between the writes loses the note.
func (a *App) MoveToNextWeek(noteID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var moved note.Note
	found := false
	kept := a.state.Week.Notes[:0]
	for _, n := range a.state.Week.Notes {
		if n.ID == noteID {
			moved = n
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return nil
	}
	a.state.Week.Notes = kept
	if err := a.saveWeekLocked(); err != nil {
		return err
	}

	year, weekNumber := note.NextWeek(a.state.Week.Year, a.state.Week.WeekNumber)
	target, err := a.store.LoadWeek(year, weekNumber)
	if err != nil {
		target = note.NewWeek(year, weekNumber)
	}
	moved.Date = target.StartDate()
	moved.Order = len(target.Notes)
	target.Notes = append(target.Notes, moved)
	if err := a.store.SaveWeek(target); err != nil {
		a.state.LastErr = err
		return err
	}
	return nil
}

// MoveToTop relocates the note to the first position and renumbers every
// note's order contiguously from zero.
func (a *App) MoveToTop(noteID string) {
	a.relocate(noteID, 0)
}

// MoveToBottom relocates the note to the last position and renumbers
// every note's order contiguously from zero.
func (a *App) MoveToBottom(noteID string) {
	a.relocate(noteID, -1)
}

// relocate moves the note to the given position; -1 means the end of
// the list.
func (a *App) relocate(noteID string, position int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	index := a.indexOf(noteID)
	if index < 0 {
		return
	}
	notes := a.state.Week.Notes
	moved := notes[index]
	notes = append(notes[:index], notes[index+1:]...)
	if position < 0 || position > len(notes) {
		position = len(notes)
	}
	notes = append(notes[:position], append([]note.Note{moved}, notes[position:]...)...)
	for i := range notes {
		notes[i].Order = i
	}
	a.state.Week.Notes = notes
	a.saveWeekLocked()
}

// MoveUp swaps the note's order with its predecessor. No-op for the
// first note. Only the two order values change; the list is not
// renumbered.
func (a *App) MoveUp(noteID string) {
	a.swapWithNeighbor(noteID, -1)
}

// MoveDown swaps the note's order with its successor. No-op for the
// last note.
func (a *App) MoveDown(noteID string) {
	a.swapWithNeighbor(noteID, 1)
}

func (a *App) swapWithNeighbor(noteID string, delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	index := a.indexOf(noteID)
	if index < 0 {
		return
	}
	neighbor := index + delta
	if neighbor < 0 || neighbor >= len(a.state.Week.Notes) {
		return
	}
	notes := a.state.Week.Notes
	notes[index].Order, notes[neighbor].Order = notes[neighbor].Order, notes[index].Order
	a.state.Week.SortNotes()
	a.saveWeekLocked()
}

// DeleteNote removes the note by id and persists the week. Remaining
// order values are left as they are; gaps only affect density, not
// sort order.
func (a *App) DeleteNote(noteID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.state.Week.Notes[:0]
	for _, n := range a.state.Week.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	a.state.Week.Notes = kept
	a.saveWeekLocked()
}

// ToggleHideClosed flips the closed-note display filter. The flag is
// transient per-session state and is never persisted.
func (a *App) ToggleHideClosed() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.HideClosed = !a.state.HideClosed
}

// Export writes the export document to the default location inside the
// data directory and returns its path.
func (a *App) Export() (string, error) {
	path := filepath.Join(a.store.Dir(), ExportFileName)
	return path, a.ExportTo(path)
}

// ExportTo writes the export document to the given destination.
func (a *App) ExportTo(path string) error {
	err := a.store.ExportTo(path)
	a.mu.Lock()
	a.state.LastErr = err
	a.mu.Unlock()
	return err
}

// RequestImport stashes the import source and raises the confirmation
// flag instead of importing immediately; imports replace the whole
// store, so they need explicit confirmation. A second request while one
// is pending replaces the stashed source.
func (a *App) RequestImport(source string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.ImportPending = true
	a.state.ImportSource = source
}

// ConfirmImport runs the stashed import and reloads the visible week on
// success. The confirmation flag and stashed source are cleared whether
// or not the import succeeds.
func (a *App) ConfirmImport() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.state.ImportPending {
		return ErrNoImportPending
	}
	source := a.state.ImportSource
	a.state.ImportPending = false
	a.state.ImportSource = ""

	if err := a.store.ImportFile(source); err != nil {
		a.state.LastErr = err
		return err
	}
	a.state.LastErr = nil
	a.loadWeekLocked(a.state.Week.Year, a.state.Week.WeekNumber)
	return nil
}

// DismissImport clears the confirmation flag and stashed source without
// importing.
func (a *App) DismissImport() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.ImportPending = false
	a.state.ImportSource = ""
}

// SetColorScheme updates and persists the display color scheme.
func (a *App) SetColorScheme(scheme store.ColorScheme) error {
	if !scheme.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidColorScheme, scheme, store.ValidColorSchemes())
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Scheme = scheme
	if err := a.store.SaveColorScheme(scheme); err != nil {
		a.state.LastErr = err
		return err
	}
	return nil
}

// SetCustomTextColor updates and persists the custom text color.
func (a *App) SetCustomTextColor(argb uint32) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Colors.TextColor = argb
	return a.saveCustomColorsLocked()
}

// SetCustomBackgroundColor updates and persists the custom background
// color.
func (a *App) SetCustomBackgroundColor(argb uint32) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Colors.BackgroundColor = argb
	return a.saveCustomColorsLocked()
}

func (a *App) saveCustomColorsLocked() error {
	if err := a.store.SaveCustomColors(a.state.Colors); err != nil {
		a.state.LastErr = err
		return err
	}
	return nil
}

// saveWeekLocked persists the visible week, recording any failure in
// LastErr.
func (a *App) saveWeekLocked() error {
	if err := a.store.SaveWeek(a.state.Week); err != nil {
		a.state.LastErr = fmt.Errorf("save week %s: %w", a.state.Week.Key(), err)
		return a.state.LastErr
	}
	return nil
}

// indexOf returns the position of the note with the given id, or -1.
// Callers must hold the mutex.
func (a *App) indexOf(noteID string) int {
	for i, n := range a.state.Week.Notes {
		if n.ID == noteID {
			return i
		}
	}
	return -1
}
