package app

import (
	"github.com/snils/weeklynotes/note"
	"github.com/snils/weeklynotes/store"
)

// State is the UI-facing snapshot of the controller. The presentation
// layer renders it and never mutates it; every change goes through an
// App operation.
type State struct {
	// Week is the currently visible week, notes sorted by order.
	Week note.Week

	// Loading is true while a week document is being read.
	Loading bool

	// ImportPending is true while a requested import awaits
	// confirmation. ImportSource is the stashed source path.
	ImportPending bool
	ImportSource  string

	// HideClosed hides done, cancelled, and moved notes from view. It is
	// per-session only and never persisted.
	HideClosed bool

	// Scheme and Colors are the persisted display preferences.
	Scheme store.ColorScheme
	Colors store.CustomColors

	// LastErr records the most recent failed operation, if any. Failures
	// never interrupt the session; the state degrades to defaults.
	LastErr error
}

// VisibleNotes returns the current week's notes with closed notes
// filtered out when HideClosed is set. Filtering is a display concern;
// the stored list always keeps every note.
func (s State) VisibleNotes() []note.Note {
	if !s.HideClosed {
		return s.Week.Notes
	}
	visible := make([]note.Note, 0, len(s.Week.Notes))
	for _, n := range s.Week.Notes {
		if !n.Status.IsClosed() {
			visible = append(visible, n)
		}
	}
	return visible
}

func (s State) clone() State {
	out := s
	out.Week.Notes = append([]note.Note(nil), s.Week.Notes...)
	return out
}
