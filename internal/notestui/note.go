package notestui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/snils/weeklynotes/note"
)

type noteItem struct {
	note note.Note
}

func (item noteItem) FilterValue() string {
	return item.note.Content
}

type noteItemDelegate struct {
	palette palette
}

func newNoteItemDelegate(p palette) noteItemDelegate {
	return noteItemDelegate{palette: p}
}

func (d noteItemDelegate) Height() int                             { return 1 }
func (d noteItemDelegate) Spacing() int                            { return 0 }
func (d noteItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d noteItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(noteItem)
	if !ok {
		return
	}

	line := formatNoteItem(item.note, m.Width())
	style := d.palette.normalItem
	if index == m.Index() {
		style = d.palette.selectedItem
	} else if item.note.Status.IsClosed() {
		style = d.palette.closedItem
	}
	fmt.Fprint(w, style.Render(line))
}

// formatNoteItem renders one note as a single list row: a fixed-width
// status marker followed by the first line of the content.
func formatNoteItem(n note.Note, width int) string {
	marker := statusMarker(n.Status)
	content := firstLine(n.Content)
	if strings.TrimSpace(content) == "" {
		content = "(empty)"
	}
	line := fmt.Sprintf("%s %s", marker, content)
	return truncateText(line, width)
}

// statusMarker renders the bracketed status symbol, with a space
// placeholder so blank notes keep the same column alignment.
func statusMarker(status note.Status) string {
	symbol := status.Symbol()
	if symbol == "" {
		symbol = " "
	}
	return "[" + symbol + "]"
}

func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
