package notestui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/snils/weeklynotes/store"
)

var borderASCII = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// palette holds the resolved styles for one color scheme. Everything the
// view renders goes through one of these styles so that switching
// schemes restyles the whole screen at once.
type palette struct {
	header       lipgloss.Style
	dayStrip     lipgloss.Style
	todayMarker  lipgloss.Style
	pane         lipgloss.Style
	normalItem   lipgloss.Style
	selectedItem lipgloss.Style
	closedItem   lipgloss.Style
	glyphDone    lipgloss.Style
	glyphBlocked lipgloss.Style
	glyphMoved   lipgloss.Style
	helpBar      lipgloss.Style
	statusInfo   lipgloss.Style
	statusError  lipgloss.Style
	muted        lipgloss.Style
	modalButton  lipgloss.Style
	modalChoice  lipgloss.Style
}

func darkPalette() palette {
	return palette{
		header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		dayStrip:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		todayMarker:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		pane:         lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		normalItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedItem: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		closedItem:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		glyphDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		glyphBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		glyphMoved:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		helpBar:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		statusInfo:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		statusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		modalButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		modalChoice:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}

func lightPalette() palette {
	p := darkPalette()
	p.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235"))
	p.dayStrip = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	p.todayMarker = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25"))
	p.normalItem = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	p.selectedItem = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25"))
	p.closedItem = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	p.helpBar = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("254"))
	return p
}

func customPalette(colors store.CustomColors) palette {
	text := argbColor(colors.TextColor)
	background := argbColor(colors.BackgroundColor)
	p := darkPalette()
	p.header = lipgloss.NewStyle().Bold(true).Foreground(text)
	p.dayStrip = lipgloss.NewStyle().Foreground(text)
	p.todayMarker = lipgloss.NewStyle().Bold(true).Foreground(background).Background(text)
	p.normalItem = lipgloss.NewStyle().Foreground(text)
	p.selectedItem = lipgloss.NewStyle().Foreground(background).Background(text)
	p.pane = lipgloss.NewStyle().Border(borderASCII).BorderForeground(text).Padding(0, 1)
	return p
}

// paletteFor resolves a scheme to concrete styles. The system scheme
// renders with terminal defaults, which here is the dark palette since
// ANSI palette indexes already defer to the terminal theme.
func paletteFor(scheme store.ColorScheme, colors store.CustomColors) palette {
	switch scheme {
	case store.SchemeLight:
		return lightPalette()
	case store.SchemeCustom:
		return customPalette(colors)
	default:
		return darkPalette()
	}
}

// argbColor converts a packed 0xAARRGGBB value to a lipgloss hex color.
// The alpha channel is dropped; terminals have no alpha.
func argbColor(argb uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", argb&0xFFFFFF))
}
