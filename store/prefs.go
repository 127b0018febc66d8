package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ColorScheme selects the display color scheme.
type ColorScheme string

const (
	// SchemeLight is the default black-on-white scheme.
	SchemeLight ColorScheme = "LIGHT"
	// SchemeDark is the white-on-black scheme.
	SchemeDark ColorScheme = "DARK"
	// SchemeSystem follows the host environment's preference.
	SchemeSystem ColorScheme = "SYSTEM"
	// SchemeCustom uses the stored custom text and background colors.
	SchemeCustom ColorScheme = "CUSTOM"
)

// ValidColorSchemes returns all valid color scheme values.
func ValidColorSchemes() []ColorScheme {
	return []ColorScheme{SchemeLight, SchemeDark, SchemeSystem, SchemeCustom}
}

// IsValid returns true if the scheme is a known valid value.
func (c ColorScheme) IsValid() bool {
	for _, valid := range ValidColorSchemes() {
		if c == valid {
			return true
		}
	}
	return false
}

// CustomColors holds the custom scheme's colors as ARGB-packed 32-bit
// integers.
type CustomColors struct {
	TextColor       uint32 `json:"textColor"`
	BackgroundColor uint32 `json:"backgroundColor"`
}

// Default custom colors: black text on a white background.
const (
	DefaultTextColor       uint32 = 0xFF000000
	DefaultBackgroundColor uint32 = 0xFFFFFFFF
)

// DefaultCustomColors returns black-on-white custom colors.
func DefaultCustomColors() CustomColors {
	return CustomColors{
		TextColor:       DefaultTextColor,
		BackgroundColor: DefaultBackgroundColor,
	}
}

const (
	colorSchemeFile  = "color_scheme.json"
	customColorsFile = "custom_colors.json"
)

// SaveColorScheme persists the selected color scheme.
func (s *Store) SaveColorScheme(scheme ColorScheme) error {
	data, err := json.Marshal(scheme)
	if err != nil {
		return fmt.Errorf("marshal color scheme: %w", err)
	}
	return s.writeFile(filepath.Join(s.dir, colorSchemeFile), data)
}

// LoadColorScheme returns the persisted color scheme, or SchemeLight when
// the preference is missing or unreadable.
func (s *Store) LoadColorScheme() ColorScheme {
	data, err := os.ReadFile(filepath.Join(s.dir, colorSchemeFile))
	if err != nil {
		return SchemeLight
	}
	var scheme ColorScheme
	if err := json.Unmarshal(data, &scheme); err != nil || !scheme.IsValid() {
		return SchemeLight
	}
	return scheme
}

// SaveCustomColors persists the custom scheme's colors.
func (s *Store) SaveCustomColors(colors CustomColors) error {
	data, err := json.Marshal(colors)
	if err != nil {
		return fmt.Errorf("marshal custom colors: %w", err)
	}
	return s.writeFile(filepath.Join(s.dir, customColorsFile), data)
}

// LoadCustomColors returns the persisted custom colors, or black-on-white
// when the preference is missing or unreadable.
func (s *Store) LoadCustomColors() CustomColors {
	data, err := os.ReadFile(filepath.Join(s.dir, customColorsFile))
	if err != nil {
		return DefaultCustomColors()
	}
	var colors CustomColors
	if err := json.Unmarshal(data, &colors); err != nil {
		return DefaultCustomColors()
	}
	return colors
}
