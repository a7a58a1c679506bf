package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used for terminal tables.

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	nameStyle = cellStyle.
			Foreground(lipgloss.Color("86")) // Cyan/Teal

	slowerStyle = cellStyle.
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	fasterStyle = cellStyle.
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")) // Purple-ish

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")). // Light purple
			MarginBottom(1)
)

// ConfigureColor picks the colour profile for w, which drops to plain ASCII
// when w is not a terminal (pipes, files, test buffers).
func ConfigureColor(w io.Writer) {
	lipgloss.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
}

// Title renders a table caption.
func Title(s string) string {
	return titleStyle.Render(s)
}
