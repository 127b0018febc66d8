package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snils/weeklynotes/store"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Show or change display colors",
}

var colorShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active color scheme and custom colors",
	RunE:  runColorShow,
}

var colorSetCmd = &cobra.Command{
	Use:   "set <scheme>",
	Short: "Set the color scheme (LIGHT, DARK, SYSTEM, CUSTOM)",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorSet,
}

var colorTextCmd = &cobra.Command{
	Use:   "text <color>",
	Short: "Set the custom text color, e.g. #FF000000 or #336699",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorText,
}

var colorBackgroundCmd = &cobra.Command{
	Use:   "background <color>",
	Short: "Set the custom background color",
	Args:  cobra.ExactArgs(1),
	RunE:  runColorBackground,
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.AddCommand(colorShowCmd, colorSetCmd, colorTextCmd, colorBackgroundCmd)
}

func runColorShow(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}

	state := controller.State()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Scheme\t%s\n", state.Scheme)
	fmt.Fprintf(w, "Text\t#%08X\n", state.Colors.TextColor)
	fmt.Fprintf(w, "Background\t#%08X\n", state.Colors.BackgroundColor)
	return w.Flush()
}

func runColorSet(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	return controller.SetColorScheme(store.ColorScheme(strings.ToUpper(args[0])))
}

func runColorText(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	argb, err := parseARGB(args[0])
	if err != nil {
		return err
	}
	return controller.SetCustomTextColor(argb)
}

func runColorBackground(cmd *cobra.Command, args []string) error {
	controller, _, err := openApp()
	if err != nil {
		return err
	}
	argb, err := parseARGB(args[0])
	if err != nil {
		return err
	}
	return controller.SetCustomBackgroundColor(argb)
}

// parseARGB parses "#AARRGGBB" or "#RRGGBB" (with or without the "#").
// Six-digit values get an opaque alpha channel.
func parseARGB(value string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", value)
	}

	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", value, err)
	}
	argb := uint32(parsed)
	if len(hex) == 6 {
		argb |= 0xFF000000
	}
	return argb, nil
}
