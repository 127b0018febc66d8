package notestui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/snils/weeklynotes/app"
	"github.com/snils/weeklynotes/note"
	"github.com/snils/weeklynotes/store"
)

const (
	viewWidth  = 80
	viewHeight = 24
)

func useASCIIRenderer(t *testing.T) {
	originalProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(originalProfile)
	})
}

func buildTestModel(t *testing.T) (model, *app.App) {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	controller := app.New(st, app.Options{})
	controller.NavigateToWeek(2025, 10)

	m := newModel(controller)
	m.width = viewWidth
	m.height = viewHeight
	m.resize()
	m.today = func() time.Time {
		return time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)
	}
	m.applyState(controller.State())
	return m, controller
}

func TestViewShowsWeekHeader(t *testing.T) {
	useASCIIRenderer(t)
	m, _ := buildTestModel(t)

	view := m.View()
	if !strings.Contains(view, "2025 week 10") {
		t.Errorf("expected the week title in the view:\n%s", view)
	}
	if !strings.Contains(view, "2025-03-03") || !strings.Contains(view, "2025-03-09") {
		t.Errorf("expected the week's date span in the view:\n%s", view)
	}
}

func TestViewShowsDayStripWithAllWeekdays(t *testing.T) {
	useASCIIRenderer(t)
	m, _ := buildTestModel(t)

	strip := m.renderDayStrip()
	for _, label := range []string{"Mo 03", "Tu 04", "We 05", "Th 06", "Fr 07", "Sa 08", "Su 09"} {
		if !strings.Contains(strip, label) {
			t.Errorf("expected day label %q in strip %q", label, strip)
		}
	}
}

func TestViewListsNotesWithStatusMarkers(t *testing.T) {
	useASCIIRenderer(t)
	m, controller := buildTestModel(t)

	n := controller.AddNote()
	controller.UpdateContent(n.ID, "write the report")
	if err := controller.SetStatus(n.ID, note.StatusDone); err != nil {
		t.Fatal(err)
	}
	m.applyState(controller.State())

	view := m.View()
	if !strings.Contains(view, "[V] write the report") {
		t.Errorf("expected the done note with its marker:\n%s", view)
	}
}

func TestFormatNoteItem(t *testing.T) {
	tests := []struct {
		name string
		note note.Note
		want string
	}{
		{
			name: "blank status keeps alignment",
			note: note.Note{Content: "plain", Status: note.StatusBlank},
			want: "[ ] plain",
		},
		{
			name: "done",
			note: note.Note{Content: "shipped", Status: note.StatusDone},
			want: "[V] shipped",
		},
		{
			name: "cancelled",
			note: note.Note{Content: "dropped", Status: note.StatusCancelled},
			want: "[X] dropped",
		},
		{
			name: "moved",
			note: note.Note{Content: "carried", Status: note.StatusMoved},
			want: "[>] carried",
		},
		{
			name: "info",
			note: note.Note{Content: "context", Status: note.StatusInfo},
			want: "[-] context",
		},
		{
			name: "empty content placeholder",
			note: note.Note{Content: "", Status: note.StatusInfo},
			want: "[-] (empty)",
		},
		{
			name: "only first line shown",
			note: note.Note{Content: "first\nsecond", Status: note.StatusBlank},
			want: "[ ] first",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatNoteItem(tt.note, 40); got != tt.want {
				t.Errorf("formatNoteItem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNoteItemTruncates(t *testing.T) {
	n := note.Note{Content: strings.Repeat("x", 50), Status: note.StatusBlank}
	got := formatNoteItem(n, 20)
	if len(got) > 20 {
		t.Errorf("expected at most 20 cells, got %d: %q", len(got), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected an ellipsis, got %q", got)
	}
}

func TestHideClosedFiltersList(t *testing.T) {
	useASCIIRenderer(t)
	m, controller := buildTestModel(t)

	open := controller.AddNote()
	controller.UpdateContent(open.ID, "still open")
	closed := controller.AddNote()
	controller.UpdateContent(closed.ID, "already done")
	if err := controller.SetStatus(closed.ID, note.StatusDone); err != nil {
		t.Fatal(err)
	}

	controller.ToggleHideClosed()
	m.applyState(controller.State())

	view := m.View()
	if !strings.Contains(view, "still open") {
		t.Errorf("expected the open note:\n%s", view)
	}
	if strings.Contains(view, "already done") {
		t.Errorf("expected the closed note to be hidden:\n%s", view)
	}
}

func TestSelectionSurvivesStateRefresh(t *testing.T) {
	useASCIIRenderer(t)
	m, controller := buildTestModel(t)

	first := controller.AddNote()
	controller.UpdateContent(first.ID, "one")
	second := controller.AddNote()
	controller.UpdateContent(second.ID, "two")
	m.applyState(controller.State())
	m.selectNoteByID(second.ID)

	controller.CycleStatus(first.ID)
	m.applyState(controller.State())

	if id, ok := m.selectedNoteID(); !ok || id != second.ID {
		t.Errorf("expected selection to stay on %s, got %s", second.ID, id)
	}
}

func TestPendingImportRaisesConfirmModal(t *testing.T) {
	useASCIIRenderer(t)
	m, controller := buildTestModel(t)

	controller.RequestImport("/tmp/export.json")
	m.applyState(controller.State())

	if m.modal.kind != modalImportConfirm {
		t.Fatalf("expected the import confirm modal, got kind %d", m.modal.kind)
	}
	view := m.View()
	if !strings.Contains(view, "Replace all notes with /tmp/export.json?") {
		t.Errorf("expected the confirmation prompt:\n%s", view)
	}
	if !strings.Contains(view, "[Import]") || !strings.Contains(view, "[Cancel]") {
		t.Errorf("expected both modal buttons:\n%s", view)
	}
}

func TestDismissedImportClearsModal(t *testing.T) {
	useASCIIRenderer(t)
	m, controller := buildTestModel(t)

	controller.RequestImport("/tmp/export.json")
	m.applyState(controller.State())
	controller.DismissImport()
	m.applyState(controller.State())

	if m.modal.kind != modalNone {
		t.Errorf("expected the modal to close, got kind %d", m.modal.kind)
	}
}

func TestHelpModalListsKeybindings(t *testing.T) {
	useASCIIRenderer(t)
	m, _ := buildTestModel(t)

	m.modal = confirmModal{kind: modalHelp}
	view := m.View()
	for _, line := range []string{"n: new note", "m: move note to next week", "E: export all weeks"} {
		if !strings.Contains(view, line) {
			t.Errorf("expected help line %q:\n%s", line, view)
		}
	}
}

func TestStatusLineLevels(t *testing.T) {
	useASCIIRenderer(t)
	m, _ := buildTestModel(t)

	m.setStatus("Exported to /tmp/weekly_notes_export.json", statusInfo)
	if got := m.renderStatusLine(); !strings.Contains(got, "Exported to") {
		t.Errorf("expected the status text, got %q", got)
	}

	m.setStatus("", statusNone)
	if got := m.renderStatusLine(); got != "" {
		t.Errorf("expected an empty status line, got %q", got)
	}
}

func TestArgbColor(t *testing.T) {
	tests := []struct {
		argb uint32
		want string
	}{
		{0xFF000000, "#000000"},
		{0xFFFFFFFF, "#FFFFFF"},
		{0xFF336699, "#336699"},
		{0x00ABCDEF, "#ABCDEF"},
	}
	for _, tt := range tests {
		if got := string(argbColor(tt.argb)); got != tt.want {
			t.Errorf("argbColor(%#x) = %q, want %q", tt.argb, got, tt.want)
		}
	}
}

func TestPaletteForScheme(t *testing.T) {
	colors := store.CustomColors{TextColor: 0xFF112233, BackgroundColor: 0xFF445566}
	custom := customPalette(colors)
	if got := custom.normalItem.GetForeground(); got != argbColor(colors.TextColor) {
		t.Errorf("expected custom text color, got %v", got)
	}

	for _, scheme := range store.ValidColorSchemes() {
		// Every scheme resolves to a usable palette.
		p := paletteFor(scheme, colors)
		if p.pane.GetBorderStyle() != borderASCII {
			t.Errorf("scheme %s: expected the ASCII border", scheme)
		}
	}
}
