package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/store"
)

// messages
type fetchedMsg struct{ status store.FetchStatus }

type watchStartedMsg struct {
	ch     <-chan source.Change
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{ change source.Change }

type watchStoppedMsg struct{}

// fetch runs one store fetch off the UI goroutine. The cursor is synced
// when fetchedMsg arrives.
func (m *Model) fetch() tea.Cmd {
	session := m.session
	ctx := m.ctx
	return func() tea.Msg {
		return fetchedMsg{status: session.Fetch(ctx)}
	}
}

func startWatchCmd(parent context.Context, path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := source.WatchFile(ctx, path, source.DefaultWatchDelay)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{change: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
