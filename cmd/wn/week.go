package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snils/weeklynotes/app"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show weeks",
}

var weekShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show a week and its notes (default: current week)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeekShow,
}

var weekNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the week after the current one",
	RunE:  runWeekNext,
}

var weekPrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Show the week before the current one",
	RunE:  runWeekPrev,
}

var weekGotoCmd = &cobra.Command{
	Use:   "goto <key>",
	Short: "Show the week with the given key, e.g. 2025-W10",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeekGoto,
}

var weekJSON bool

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.AddCommand(weekShowCmd, weekNextCmd, weekPrevCmd, weekGotoCmd)

	weekCmd.PersistentFlags().BoolVar(&weekJSON, "json", false, "Output as JSON")
}

func runWeekShow(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) > 0 {
		key = args[0]
	}
	controller, err := openAppAt(key)
	if err != nil {
		return err
	}
	return printWeek(controller)
}

func runWeekNext(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	controller.NavigateNext()
	return printWeek(controller)
}

func runWeekPrev(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	controller.NavigatePrevious()
	return printWeek(controller)
}

func runWeekGoto(cmd *cobra.Command, args []string) error {
	controller, err := openAppAt(args[0])
	if err != nil {
		return err
	}
	return printWeek(controller)
}

func printWeek(controller *app.App) error {
	state := controller.State()
	if state.LastErr != nil {
		return state.LastErr
	}

	if weekJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Week)
	}

	week := state.Week
	fmt.Printf("%s (%s .. %s)\n", week.Title(), week.StartDate(), week.EndDate())
	if len(week.Notes) == 0 {
		fmt.Println("No notes this week.")
		return nil
	}
	fmt.Print(renderNoteTable(week.Notes))
	return nil
}
