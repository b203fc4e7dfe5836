package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette used by the board and the TUI.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles. DisableColor swaps them for plain ones.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StyleDim    lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
	StyleTitle  lipgloss.Style
)

func init() {
	EnableColor()
}

// EnableColor installs the colored styles.
func EnableColor() {
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleTitle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
}

// DisableColor makes every style render plain text.
func DisableColor() {
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StyleDim = plain
	StyleHeader = plain
	StyleBold = plain
	StyleTitle = plain
}

// SetColor enables or disables colored output.
func SetColor(enabled bool) {
	if enabled {
		EnableColor()
		return
	}
	DisableColor()
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold.
func Bold(text string) string {
	return StyleBold.Render(text)
}
