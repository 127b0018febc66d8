package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export every week to a single JSON document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace all notes with the contents of an export document",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var importForce bool

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	importCmd.Flags().BoolVar(&importForce, "force", false, "Import without asking for confirmation")
}

func runExport(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if err := controller.ExportTo(args[0]); err != nil {
			return err
		}
		fmt.Println(args[0])
		return nil
	}

	path, err := controller.Export()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}

	controller.RequestImport(args[0])

	if !importForce {
		fmt.Fprintf(cmd.OutOrStdout(), "This replaces ALL existing notes with %s. Continue? [y/N] ", args[0])
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			controller.DismissImport()
			fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
			return nil
		}
	}

	if err := controller.ConfirmImport(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Import complete.")
	return nil
}
