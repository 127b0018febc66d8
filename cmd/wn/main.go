// Package main implements the wn CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snils/weeklynotes/app"
	"github.com/snils/weeklynotes/internal/config"
	"github.com/snils/weeklynotes/internal/notestui"
	"github.com/snils/weeklynotes/internal/paths"
	"github.com/snils/weeklynotes/note"
	"github.com/snils/weeklynotes/store"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wn",
	Short: "Weekly notes on a single screen",
	RunE:  runRoot,
}

var dataDirFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "",
		"Directory holding week documents (overrides config and "+paths.DataDirEnv+")")
}

func runRoot(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	return notestui.Run(controller)
}

// openStore resolves the data directory from the flag, config file, and
// environment, and opens the store there.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	override := dataDirFlag
	if override == "" {
		override = cfg.DataDir
	}
	dir, err := paths.DataDir(override)
	if err != nil {
		return nil, config.Config{}, err
	}

	st, err := store.New(dir)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("open store: %w", err)
	}
	return st, *cfg, nil
}

func openApp() (*app.App, *store.Store, error) {
	st, cfg, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return app.New(st, app.Options{HideClosed: cfg.Notes.HideClosed}), st, nil
}

// openAppAt opens the controller and navigates to the week named by a
// --week flag value, staying on the current week when the value is empty.
func openAppAt(weekKey string) (*app.App, error) {
	controller, _, err := openApp()
	if err != nil {
		return nil, err
	}
	if weekKey != "" {
		year, weekNumber, err := note.ParseKey(weekKey)
		if err != nil {
			return nil, err
		}
		controller.NavigateToWeek(year, weekNumber)
	}
	return controller, nil
}
