package console

import (
	"strconv"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// Theme is the set of styles used to draw the chrome.
type Theme struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Status    lipgloss.Style
	Language  lipgloss.Style
	Gutter    lipgloss.Style
	Dim       lipgloss.Style
}

// LightTheme is the default palette.
func LightTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("28")).Padding(0, 1),
		Tab:       r.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("254")).Padding(0, 1),
		ActiveTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("29")).Padding(0, 1),
		Status:    r.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("252")).Padding(0, 1),
		Language:  r.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("29")).Padding(0, 1),
		Gutter:    r.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:       r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// DarkTheme is the palette selected by :theme.
func DarkTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("121")).Padding(0, 1),
		Tab:       r.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
		ActiveTab: r.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("121")).Padding(0, 1),
		Status:    r.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		Language:  r.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("121")).Padding(0, 1),
		Gutter:    r.NewStyle().Foreground(lipgloss.Color("240")),
		Dim:       r.NewStyle().Foreground(lipgloss.Color("242")),
	}
}

// Render draws the title, the tab row and the status line.
func Render(p status.Projection, th Theme, width int) string {
	tabs := make([]string, len(p.Tabs))
	for i, tab := range p.Tabs {
		style := th.Tab
		if tab.Active {
			style = th.ActiveTab
		}
		tabs[i] = style.Render(tab.Label)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if width > 0 {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}

	lines := []string{th.Title.Render(p.Title), row}
	if p.Status != "" {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			th.Status.Render(p.Status),
			th.Language.Render(p.Language.DisplayName()),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderBuffer lists text with right-aligned line numbers.
func RenderBuffer(text string, th Theme) string {
	lines := strings.Split(text, "\n")
	digits := len(strconv.Itoa(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		num := strconv.Itoa(i + 1)
		b.WriteString(th.Gutter.Render(strings.Repeat(" ", digits-len(num)) + num + " │"))
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
