package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pokedex/browser/internal/domain"
)

// entryItem adapts a catalog entry to the list component
type entryItem struct {
	entry domain.CatalogEntry
}

func (i entryItem) FilterValue() string { return i.entry.Name }

// entryDelegate renders one entry per line: number, name and type badges
type entryDelegate struct{}

func (d entryDelegate) Height() int { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	prefix := "  "
	nameStyle := lipgloss.NewStyle().Foreground(colorForeground)
	if index == m.Index() {
		prefix = "> "
		nameStyle = nameStyle.Foreground(colorCursor).Bold(true)
	}

	badges := make([]string, 0, len(it.entry.Tags))
	for _, tag := range it.entry.Tags {
		badges = append(badges, tagStyle(tag, true).Render(tag.Label()))
	}

	fmt.Fprintf(w, "%s#%03d %s %s", prefix, it.entry.ID, nameStyle.Render(it.entry.Name), strings.Join(badges, " "))
}
