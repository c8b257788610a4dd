package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/screen"
)

// ViewState represents the current view mode
type ViewState int

const (
	ListState ViewState = iota
	DetailState
)

// Model is the main TUI model
type Model struct {
	ctx     context.Context
	screen  *screen.ListScreen
	details *screen.DetailScreen

	list     list.Model
	search   textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	state     ViewState
	searching bool
	tagCursor int
	width     int
	height    int

	view screen.ListView

	detailRequestID int
	detailCancel    context.CancelFunc
	detailLoading   bool
	detail          *screen.DetailView
}

// NewModel creates a model over one list screen session
func NewModel(ctx context.Context, ls *screen.ListScreen, details *screen.DetailScreen) Model {
	l := list.New([]list.Item{}, entryDelegate{}, 0, 0)
	l.Title = "Pokédex"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle

	ti := textinput.New()
	ti.Prompt = "Suchen: "
	ti.Placeholder = "name"

	s := spinner.New()
	s.Spinner = spinner.Dot

	// Init always dispatches the first load, so an empty screen starts in
	// the loading state.
	view := ls.Snapshot()
	if len(view.Entries) == 0 && view.Err == nil {
		view.Loading = true
	}

	return Model{
		ctx:      ctx,
		screen:   ls,
		details:  details,
		list:     l,
		search:   ti,
		viewport: viewport.New(0, 0),
		spinner:  s,
		help:     help.New(),
		keys:     keys,
		state:    ListState,
		view:     view,
	}
}

// Init starts the first page load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadFirstPage(m.ctx, m.screen))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelDetail()
			return m, tea.Quit
		}
		if m.state == DetailState {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)

	case pageMsg:
		m.refreshList()
		return m, nil

	case detailMsg:
		if msg.requestID != m.detailRequestID || m.state != DetailState {
			return m, nil
		}
		m.detailLoading = false
		view := msg.view
		m.detail = &view
		m.viewport.SetContent(renderDetail(view))
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.screen.SetSearch(m.search.Value())
		m.refreshList()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.PrevTag):
		m.tagCursor = (m.tagCursor + len(domain.CategoryTags) - 1) % len(domain.CategoryTags)
	case key.Matches(msg, m.keys.NextTag):
		m.tagCursor = (m.tagCursor + 1) % len(domain.CategoryTags)
	case key.Matches(msg, m.keys.ToggleTag):
		m.screen.ToggleTag(domain.CategoryTags[m.tagCursor])
		m.refreshList()
	case key.Matches(msg, m.keys.ClearTags):
		m.screen.ClearTags()
		m.refreshList()
	case key.Matches(msg, m.keys.LoadMore):
		if m.view.Err != nil || m.view.Pagination.InFlight {
			return m, nil
		}
		m.view.Pagination.InFlight = true
		return m, loadMore(m.ctx, m.screen)
	case key.Matches(msg, m.keys.Retry):
		if m.view.Err == nil {
			return m, nil
		}
		m.view.Err = nil
		m.view.Loading = len(m.view.Entries) == 0
		return m, retryPage(m.ctx, m.screen)
	case key.Matches(msg, m.keys.Enter):
		item, ok := m.list.SelectedItem().(entryItem)
		if !ok {
			return m, nil
		}
		return m, m.openDetail(item.entry.ID)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelDetail()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.cancelDetail()
		m.detailRequestID++
		m.state = ListState
		m.detail = nil
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		if m.detail == nil || m.detail.Err == nil {
			return m, nil
		}
		return m, m.openDetail(m.detail.ID)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openDetail switches to the detail pane and starts a fresh load of id.
func (m *Model) openDetail(id int) tea.Cmd {
	m.cancelDetail()

	ctx, cancel := context.WithCancel(m.ctx)
	m.detailCancel = cancel
	m.detailRequestID++
	m.detailLoading = true
	m.detail = nil
	m.state = DetailState
	m.viewport.SetContent("")

	return fetchDetail(ctx, m.details, id, m.detailRequestID)
}

func (m *Model) cancelDetail() {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
}

// refreshList rebuilds the list pane from a new snapshot
func (m *Model) refreshList() {
	m.view = m.screen.Snapshot()

	items := make([]list.Item, 0, len(m.view.Visible))
	for _, entry := range m.view.Visible {
		items = append(items, entryItem{entry: entry})
	}
	m.list.SetItems(items)
}

// resizePanes adjusts the dimensions of list and viewport based on window size
func (m *Model) resizePanes() {
	// Search line, tag bar, status bar and help
	reserved := 5
	availableHeight := m.height - reserved
	if availableHeight < 0 {
		availableHeight = 0
	}

	m.list.SetSize(m.width, availableHeight)
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 2
	m.search.Width = m.width - len(m.search.Prompt) - 2
}

// View renders the current view
func (m Model) View() string {
	if m.state == DetailState {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(SearchStyle.Render(m.search.View()))
	b.WriteString("\n")
	b.WriteString(m.tagBar())
	b.WriteString("\n")

	switch {
	case m.view.Err != nil:
		b.WriteString(ErrorStyle.Render(m.view.ErrorMessage))
		b.WriteString("\n")
		b.WriteString(StatusBarStyle.Render("Press r to try again"))
	case m.view.Loading:
		b.WriteString(m.spinner.View() + " Loading...")
	case m.view.NoResults:
		b.WriteString(fmt.Sprintf("No results found for %q", m.view.Selection.Search))
	default:
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) tagBar() string {
	parts := make([]string, 0, len(domain.CategoryTags))
	for i, tag := range domain.CategoryTags {
		label := tagStyle(tag, m.view.Selection.HasTag(tag)).Render(tag.Label())
		if i == m.tagCursor {
			label = TagCursorStyle.Render("[") + label + TagCursorStyle.Render("]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m Model) statusBar() string {
	status := fmt.Sprintf("%d of %d loaded", len(m.view.Visible), len(m.view.Entries))
	if m.view.Pagination.InFlight && !m.view.Loading {
		status += " • " + m.spinner.View() + " Loading..."
	}
	return StatusBarStyle.Render(status)
}

func (m Model) detailView() string {
	if m.detailLoading {
		return m.spinner.View() + " Loading...\n\n" + StatusBarStyle.Render("esc back")
	}
	return m.viewport.View() + "\n" + StatusBarStyle.Render("esc back • r try again • q quit")
}

func renderDetail(view screen.DetailView) string {
	if view.Err != nil {
		return ErrorStyle.Render(view.ErrorMessage) + "\n\n" + StatusBarStyle.Render("Press r to try again")
	}

	entry := view.Entry
	var b strings.Builder
	b.WriteString(DetailTitleStyle.Render(fmt.Sprintf("#%03d %s", entry.ID, entry.Name)))
	b.WriteString("\n")
	if entry.SpriteURL != "" {
		b.WriteString(StatusBarStyle.Render(entry.SpriteURL))
		b.WriteString("\n")
	}

	b.WriteString(SectionStyle.Render("Fähigkeiten"))
	b.WriteString("\n")
	for _, a := range entry.Abilities {
		b.WriteString("  • " + a.Localized + "\n")
	}

	b.WriteString(SectionStyle.Render("Bewegungen"))
	b.WriteString("\n")
	for _, mv := range entry.Moves {
		b.WriteString("  • " + mv.Localized + "\n")
	}
	return b.String()
}

// Run starts the terminal program and blocks until the user quits
func Run(ctx context.Context, ls *screen.ListScreen, details *screen.DetailScreen) error {
	p := tea.NewProgram(NewModel(ctx, ls, details), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
