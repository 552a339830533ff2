package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	ColorGreen = lipgloss.Color("#8ec07c")
	ColorRed   = lipgloss.Color("#fb4934")
	ColorDim   = lipgloss.Color("#928374")
)

// Predefined lipgloss styles for the non-contractual accent lines
// (confirmations, summaries). The report and latest listings themselves
// are rendered unstyled.
var (
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleRed   = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim   = lipgloss.NewStyle().Foreground(ColorDim)
)
