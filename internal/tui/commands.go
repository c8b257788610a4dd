package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pokedex/browser/internal/screen"
)

// Message types for async operations

type pageMsg struct {
	err error
}

type detailMsg struct {
	requestID int
	view      screen.DetailView
}

// loadFirstPage returns a tea.Cmd that runs the list screen's first load
func loadFirstPage(ctx context.Context, ls *screen.ListScreen) tea.Cmd {
	return func() tea.Msg {
		return pageMsg{err: ls.Init(ctx)}
	}
}

func loadMore(ctx context.Context, ls *screen.ListScreen) tea.Cmd {
	return func() tea.Msg {
		return pageMsg{err: ls.LoadMore(ctx)}
	}
}

func retryPage(ctx context.Context, ls *screen.ListScreen) tea.Cmd {
	return func() tea.Msg {
		return pageMsg{err: ls.Retry(ctx)}
	}
}

// fetchDetail returns a tea.Cmd that loads a detail page. The request id
// lets the model drop answers for pages it already left.
func fetchDetail(ctx context.Context, ds *screen.DetailScreen, id, requestID int) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{requestID: requestID, view: ds.Load(ctx, id)}
	}
}
