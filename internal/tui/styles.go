package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pokedex/browser/internal/domain"
)

var (
	colorForeground = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}
	colorAccent     = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	colorMuted      = lipgloss.AdaptiveColor{Light: "8", Dark: "7"}
	colorCursor     = lipgloss.AdaptiveColor{Light: "5", Dark: "13"}

	TitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	SearchStyle = lipgloss.NewStyle().
			Foreground(colorForeground).
			Padding(0, 1)

	TagCursorStyle = lipgloss.NewStyle().
			Underline(true).
			Bold(true)

	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
	SectionStyle = lipgloss.NewStyle().
			Foreground(colorCursor).
			Bold(true).
			MarginTop(1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)

// tagStyle renders a tag as a colored badge
func tagStyle(tag domain.CategoryTag, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(tag.Color())).
		Padding(0, 1)
	if !selected {
		style = style.Faint(true)
	}
	return style
}
