package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snils/weeklynotes/app"
	"github.com/snils/weeklynotes/internal/ui"
	"github.com/snils/weeklynotes/note"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage the notes of a week",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <content>",
	Short: "Add a note to a week",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNoteAdd,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of a week",
	RunE:  runNoteList,
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id> <content>",
	Short: "Replace a note's content",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runNoteEdit,
}

var noteStatusCmd = &cobra.Command{
	Use:   "status <id> [status]",
	Short: "Set a note's status, or cycle it when no status is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runNoteStatus,
}

var noteMoveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a note to the next week, or reorder it within its week",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteMove,
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNoteRm,
}

var (
	noteWeekKey    string
	noteAddStatus  string
	noteListJSON   bool
	noteListHide   bool
	noteMoveTop    bool
	noteMoveBottom bool
	noteMoveUp     bool
	noteMoveDown   bool
)

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd, noteListCmd, noteEditCmd, noteStatusCmd, noteMoveCmd, noteRmCmd)

	noteCmd.PersistentFlags().StringVar(&noteWeekKey, "week", "", "Week to operate on, e.g. 2025-W10 (default: current week)")
	noteAddCmd.Flags().StringVar(&noteAddStatus, "status", "", "Initial status (BLANK, DONE, CANCELLED, MOVED, INFO)")
	noteListCmd.Flags().BoolVar(&noteListJSON, "json", false, "Output as JSON")
	noteListCmd.Flags().BoolVar(&noteListHide, "hide-closed", false, "Hide done, cancelled, and moved notes")
	noteMoveCmd.Flags().BoolVar(&noteMoveTop, "top", false, "Move the note to the top of its week")
	noteMoveCmd.Flags().BoolVar(&noteMoveBottom, "bottom", false, "Move the note to the bottom of its week")
	noteMoveCmd.Flags().BoolVar(&noteMoveUp, "up", false, "Swap the note with its predecessor")
	noteMoveCmd.Flags().BoolVar(&noteMoveDown, "down", false, "Swap the note with its successor")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}

	content := strings.Join(args, " ")
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("note content must not be blank")
	}

	n := controller.AddNote()
	controller.UpdateContent(n.ID, content)
	if noteAddStatus != "" {
		if err := controller.SetStatus(n.ID, note.Status(strings.ToUpper(noteAddStatus))); err != nil {
			return err
		}
	}
	if err := controller.State().LastErr; err != nil {
		return err
	}

	fmt.Println(n.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}
	if noteListHide != controller.State().HideClosed {
		controller.ToggleHideClosed()
	}

	state := controller.State()
	notes := state.VisibleNotes()

	if noteListJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	fmt.Println(state.Week.Title())
	if len(notes) == 0 {
		fmt.Println("No notes this week.")
		return nil
	}
	fmt.Print(renderNoteTable(notes))
	return nil
}

func runNoteEdit(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}

	id, err := resolveNoteID(controller, args[0])
	if err != nil {
		return err
	}
	controller.UpdateContent(id, strings.Join(args[1:], " "))
	return controller.State().LastErr
}

func runNoteStatus(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}

	id, err := resolveNoteID(controller, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		controller.CycleStatus(id)
	} else if err := controller.SetStatus(id, note.Status(strings.ToUpper(args[1]))); err != nil {
		return err
	}

	for _, n := range controller.State().Week.Notes {
		if n.ID == id {
			fmt.Println(n.Status)
			break
		}
	}
	return controller.State().LastErr
}

func runNoteMove(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}

	id, err := resolveNoteID(controller, args[0])
	if err != nil {
		return err
	}

	switch {
	case noteMoveTop:
		controller.MoveToTop(id)
	case noteMoveBottom:
		controller.MoveToBottom(id)
	case noteMoveUp:
		controller.MoveUp(id)
	case noteMoveDown:
		controller.MoveDown(id)
	default:
		if err := controller.MoveToNextWeek(id); err != nil {
			return err
		}
		state := controller.State()
		year, weekNumber := note.NextWeek(state.Week.Year, state.Week.WeekNumber)
		fmt.Printf("Moved to %d-W%d\n", year, weekNumber)
	}
	return controller.State().LastErr
}

func runNoteRm(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(noteWeekKey)
	if err != nil {
		return err
	}

	id, err := resolveNoteID(controller, args[0])
	if err != nil {
		return err
	}
	controller.DeleteNote(id)
	return controller.State().LastErr
}

// resolveNoteID matches a full id or a unique id prefix against the
// notes of the controller's visible week.
func resolveNoteID(controller *app.App, prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	matches := []string{}
	for _, n := range controller.State().Week.Notes {
		id := strings.ToLower(n.ID)
		if id == prefix {
			return n.ID, nil
		}
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, n.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no note with id %q in this week", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous note id %q matches %d notes", prefix, len(matches))
	}
}

// renderNoteTable renders notes as an aligned table with shortened,
// highlighted ids and colored status markers.
func renderNoteTable(notes []note.Note) string {
	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	prefixLengths := ui.UniqueIDPrefixLengths(ids)

	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		shortID := n.ID
		if length, ok := prefixLengths[strings.ToLower(n.ID)]; ok && length < len(n.ID) {
			// Show a couple of extra characters beyond the minimum so
			// short prefixes stay readable.
			end := length + 2
			if end > len(n.ID) {
				end = len(n.ID)
			}
			shortID = ui.HighlightID(n.ID[:end], length)
		}
		rows = append(rows, []string{
			shortID,
			ui.StatusGlyph(n.Status),
			firstLine(n.Content),
		})
	}
	return ui.FormatTable([]string{"ID", "ST", "CONTENT"}, rows)
}

func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}
