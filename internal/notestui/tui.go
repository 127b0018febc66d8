// Package notestui implements the interactive weekly notes screen on
// top of bubbletea. The model renders from app.State snapshots and
// performs every mutation through the app controller inside tea.Cmd
// functions, so the event loop never blocks on file I/O.
package notestui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/snils/weeklynotes/app"
	internalstrings "github.com/snils/weeklynotes/internal/strings"
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalImportPath
	modalImportConfirm
)

type model struct {
	controller  *app.App
	width       int
	height      int
	state       app.State
	palette     palette
	noteList    list.Model
	editor      textarea.Model
	editingID   string
	importInput textinput.Model
	modal       confirmModal
	status      string
	statusLevel statusLevel
	today       func() time.Time
}

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
}

// Run starts the interactive weekly notes screen and blocks until the
// user quits.
func Run(controller *app.App) error {
	if controller == nil {
		return fmt.Errorf("app controller is required")
	}
	program := tea.NewProgram(newModel(controller), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func newModel(controller *app.App) model {
	state := controller.State()
	p := paletteFor(state.Scheme, state.Colors)

	noteList := list.New(nil, newNoteItemDelegate(p), 0, 0)
	noteList.SetShowTitle(false)
	noteList.SetShowStatusBar(false)
	noteList.SetFilteringEnabled(false)
	noteList.SetShowHelp(false)
	noteList.SetShowPagination(false)

	editor := textarea.New()
	editor.ShowLineNumbers = false
	editor.Prompt = ""

	importInput := textinput.New()
	importInput.Prompt = "> "
	importInput.Placeholder = "path to export file"

	m := model{
		controller:  controller,
		palette:     p,
		noteList:    noteList,
		editor:      editor,
		importInput: importInput,
		modal:       confirmModal{kind: modalNone},
		today:       time.Now,
	}
	m.applyState(state)
	return m
}

func (m model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case stateMsg:
		m.applyState(msg.state)
		return m, nil
	case noteAddedMsg:
		m.applyState(msg.state)
		m.selectNoteByID(msg.noteID)
		return m.startEditing(), nil
	case exportDoneMsg:
		m.applyState(msg.state)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), statusError)
		} else {
			m.setStatus(fmt.Sprintf("Exported to %s", msg.path), statusInfo)
		}
		return m, nil
	case importDoneMsg:
		m.applyState(msg.state)
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Import failed: %v", msg.err), statusError)
		} else {
			m.setStatus("Import complete", statusInfo)
		}
		return m, nil
	}

	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}
	if m.editingID != "" {
		return m.updateEditor(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}

	var cmd tea.Cmd
	m.noteList, cmd = m.noteList.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.modal = confirmModal{kind: modalHelp}
		return m, nil
	case "left", "h":
		return m, m.mutateCmd(m.controller.NavigatePrevious)
	case "right", "l":
		return m, m.mutateCmd(m.controller.NavigateNext)
	case "t":
		return m, m.goToTodayCmd()
	case "n":
		return m, m.addNoteCmd()
	case "enter", "e":
		return m.startEditing(), nil
	case " ", "s":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.CycleStatus(id) })
		}
		return m, nil
	case "m":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.moveToNextWeekCmd(id)
		}
		return m, nil
	case "T":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.MoveToTop(id) })
		}
		return m, nil
	case "B":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.MoveToBottom(id) })
		}
		return m, nil
	case "K":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.MoveUp(id) })
		}
		return m, nil
	case "J":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.MoveDown(id) })
		}
		return m, nil
	case "d":
		if id, ok := m.selectedNoteID(); ok {
			return m, m.mutateCmd(func() { m.controller.DeleteNote(id) })
		}
		return m, nil
	case "c":
		return m, m.mutateCmd(m.controller.ToggleHideClosed)
	case "E":
		return m, m.exportCmd()
	case "i":
		m.modal = confirmModal{kind: modalImportPath}
		m.importInput.SetValue("")
		m.importInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.noteList, cmd = m.noteList.Update(msg)
	return m, cmd
}

func (m model) startEditing() model {
	item, ok := m.noteList.SelectedItem().(noteItem)
	if !ok {
		return m
	}
	m.editingID = item.note.ID
	m.editor.SetValue(item.note.Content)
	m.editor.Focus()
	m.editor.CursorEnd()
	return m
}

func (m model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+s":
			id := m.editingID
			content := m.editor.Value()
			m.editingID = ""
			m.editor.Blur()
			return m, m.saveContentCmd(id, content)
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.modal.kind {
	case modalHelp:
		switch key.String() {
		case "?", "esc", "q":
			m.modal = confirmModal{kind: modalNone}
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case modalImportPath:
		switch key.String() {
		case "esc":
			m.modal = confirmModal{kind: modalNone}
			m.importInput.Blur()
			return m, nil
		case "enter":
			source := internalstrings.TrimTrailingWhitespace(m.importInput.Value())
			m.importInput.Blur()
			m.modal = confirmModal{kind: modalNone}
			if internalstrings.IsBlank(source) {
				return m, nil
			}
			return m, m.requestImportCmd(source)
		}
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		return m, cmd

	case modalImportConfirm:
		switch key.String() {
		case "left", "right", "tab", "shift+tab", "backtab":
			if m.modal.selected == 0 {
				m.modal.selected = 1
			} else {
				m.modal.selected = 0
			}
			return m, nil
		case "enter":
			confirm := m.modal.selected == 0
			m.modal = confirmModal{kind: modalNone}
			if confirm {
				return m, m.confirmImportCmd()
			}
			return m, m.mutateCmd(m.controller.DismissImport)
		case "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, m.mutateCmd(m.controller.DismissImport)
		}
		return m, nil
	}
	return m, nil
}

// applyState replaces the rendered snapshot, rebuilds the visible list
// while keeping the selection on the same note, and raises the import
// confirmation modal when the controller is waiting on one.
func (m *model) applyState(state app.State) {
	selectedID := ""
	if item, ok := m.noteList.SelectedItem().(noteItem); ok {
		selectedID = item.note.ID
	}

	if state.Scheme != m.state.Scheme || state.Colors != m.state.Colors {
		m.palette = paletteFor(state.Scheme, state.Colors)
		m.noteList.SetDelegate(newNoteItemDelegate(m.palette))
	}
	m.state = state

	visible := state.VisibleNotes()
	items := make([]list.Item, 0, len(visible))
	for _, n := range visible {
		items = append(items, noteItem{note: n})
	}
	m.noteList.SetItems(items)
	if selectedID != "" {
		m.selectNoteByID(selectedID)
	}
	if len(items) > 0 && m.noteList.Index() < 0 {
		m.noteList.Select(0)
	}

	if state.LastErr != nil {
		m.setStatus(fmt.Sprintf("Error: %v", state.LastErr), statusError)
	}

	if state.ImportPending {
		m.modal = confirmModal{
			kind:        modalImportConfirm,
			message:     fmt.Sprintf("Replace all notes with %s?", state.ImportSource),
			confirmText: "Import",
			cancelText:  "Cancel",
			selected:    1,
		}
	} else if m.modal.kind == modalImportConfirm {
		m.modal = confirmModal{kind: modalNone}
	}
}

func (m *model) selectNoteByID(id string) {
	for i, item := range m.noteList.Items() {
		if n, ok := item.(noteItem); ok && n.note.ID == id {
			m.noteList.Select(i)
			return
		}
	}
}

func (m model) selectedNoteID() (string, bool) {
	item, ok := m.noteList.SelectedItem().(noteItem)
	if !ok {
		return "", false
	}
	return item.note.ID, true
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m *model) resize() {
	contentHeight := m.height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}
	listWidth := m.width - 4
	if listWidth < 1 {
		listWidth = 1
	}
	listHeight := contentHeight - 2
	if listHeight < 1 {
		listHeight = 1
	}
	m.noteList.SetSize(listWidth, listHeight)
	m.editor.SetWidth(listWidth)
	m.editor.SetHeight(listHeight)
	m.importInput.Width = listWidth / 2
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading weekly notes..."
	}

	contentHeight := m.height - 5
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	if m.editingID != "" {
		body = m.editor.View()
	} else {
		body = m.noteList.View()
	}
	pane := m.palette.pane.Width(m.width - 2).Height(contentHeight).Render(body)

	sections := []string{
		m.renderHeader(),
		m.renderDayStrip(),
		pane,
		m.renderHelpLine(),
		m.renderStatusLine(),
	}
	view := strings.Join(sections, "\n")
	if m.modal.kind != modalNone {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
	}
	return view
}

func (m model) renderHeader() string {
	week := m.state.Week
	title := m.palette.header.Render(week.Title())
	span := m.palette.muted.Render(fmt.Sprintf("%s .. %s", week.StartDate(), week.EndDate()))
	return title + "  " + span
}

// renderDayStrip draws the seven days of the visible week with the
// current date highlighted when it falls inside the week.
func (m model) renderDayStrip() string {
	start := m.state.Week.StartDate()
	today := m.today().Format("2006-01-02")
	parts := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDays(i)
		label := fmt.Sprintf("%s %02d", day.Format("Mon")[:2], day.Day())
		style := m.palette.dayStrip
		if day.String() == today {
			style = m.palette.todayMarker
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "  ")
}

func (m model) renderHelpLine() string {
	text := m.helpSummary()
	return m.palette.helpBar.Width(m.width).Render(truncateText(text, m.width))
}

func (m model) helpSummary() string {
	if m.editingID != "" {
		return "Keys: esc or ctrl+s save | type to edit"
	}
	return "Keys: n new | enter edit | space status | d delete | h/l week | ? help | q quit"
}

func (m model) renderStatusLine() string {
	if internalstrings.IsBlank(m.status) {
		return ""
	}
	style := m.palette.muted
	switch m.statusLevel {
	case statusError:
		style = m.palette.statusError
	case statusInfo:
		style = m.palette.statusInfo
	}
	return style.Render(truncateText(m.status, m.width))
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	modalWidth := m.width - 8
	if modalWidth > 60 {
		modalWidth = 60
	}
	if modalWidth < 20 {
		modalWidth = 20
	}

	switch m.modal.kind {
	case modalHelp:
		return modalStyle.Render(m.helpContent())
	case modalImportPath:
		content := strings.Join([]string{
			"Import notes from file",
			"",
			m.importInput.View(),
			"",
			m.palette.muted.Render("enter to continue, esc to cancel"),
		}, "\n")
		return modalStyle.Render(content)
	case modalImportConfirm:
		buttons := make([]string, 0, 2)
		for i, option := range []string{m.modal.confirmText, m.modal.cancelText} {
			style := m.palette.modalButton
			if i == m.modal.selected {
				style = m.palette.modalChoice
			}
			buttons = append(buttons, style.Render("["+option+"]"))
		}
		message := wordwrap.String(m.modal.message, modalWidth)
		content := strings.Join([]string{message, "", strings.Join(buttons, " ")}, "\n")
		return modalStyle.Render(content)
	}
	return ""
}

func (m model) helpContent() string {
	sections := []string{
		m.palette.header.Render("Navigation"),
		"h/left: previous week",
		"l/right: next week",
		"t: jump to the current week",
		"up/down or j/k: move selection",
		"",
		m.palette.header.Render("Notes"),
		"n: new note",
		"enter or e: edit note",
		"space or s: cycle status",
		"m: move note to next week",
		"T/B: move note to top/bottom",
		"K/J: move note up/down",
		"d: delete note",
		"c: show or hide closed notes",
		"",
		m.palette.header.Render("Data"),
		"E: export all weeks",
		"i: import from an export file",
		"",
		m.palette.header.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

func (m model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		m.controller.LoadCurrentWeek()
		return stateMsg{state: m.controller.State()}
	}
}

// mutateCmd runs a controller operation off the event loop and delivers
// the resulting snapshot.
func (m model) mutateCmd(op func()) tea.Cmd {
	return func() tea.Msg {
		op()
		return stateMsg{state: m.controller.State()}
	}
}

func (m model) goToTodayCmd() tea.Cmd {
	return func() tea.Msg {
		m.controller.NavigateToDate(m.today())
		return stateMsg{state: m.controller.State()}
	}
}

func (m model) addNoteCmd() tea.Cmd {
	return func() tea.Msg {
		n := m.controller.AddNote()
		return noteAddedMsg{noteID: n.ID, state: m.controller.State()}
	}
}

func (m model) saveContentCmd(noteID, content string) tea.Cmd {
	return func() tea.Msg {
		m.controller.UpdateContent(noteID, content)
		return stateMsg{state: m.controller.State()}
	}
}

func (m model) moveToNextWeekCmd(noteID string) tea.Cmd {
	return func() tea.Msg {
		// Failures land in the snapshot's LastErr.
		_ = m.controller.MoveToNextWeek(noteID)
		return stateMsg{state: m.controller.State()}
	}
}

func (m model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := m.controller.Export()
		return exportDoneMsg{path: path, err: err, state: m.controller.State()}
	}
}

func (m model) requestImportCmd(source string) tea.Cmd {
	return func() tea.Msg {
		m.controller.RequestImport(source)
		return stateMsg{state: m.controller.State()}
	}
}

func (m model) confirmImportCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.controller.ConfirmImport()
		return importDoneMsg{err: err, state: m.controller.State()}
	}
}

type stateMsg struct {
	state app.State
}

type noteAddedMsg struct {
	noteID string
	state  app.State
}

type exportDoneMsg struct {
	path  string
	err   error
	state app.State
}

type importDoneMsg struct {
	err   error
	state app.State
}
