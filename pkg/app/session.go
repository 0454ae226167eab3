// Package app wires the participant store, the selection cursor and the
// navigation shortcuts into one session that UIs and commands share.
package app

import (
	"context"

	"tableflip.dev/fip/pkg/logging"
	"tableflip.dev/fip/pkg/nav"
	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/shortcut"
	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/store"
)

// Session owns one store, a cursor over it and a binder stepping that
// cursor from the hub's events.
type Session struct {
	Store  *store.Store
	Cursor *nav.Cursor
	Hub    *shortcut.Hub
	Binder *shortcut.Binder
}

// NewSession builds a session over fetcher. Shortcuts start active.
func NewSession(fetcher source.Fetcher, opts ...shortcut.Option) *Session {
	s := &Session{
		Store: store.New(fetcher),
		Hub:   shortcut.NewHub(),
	}
	s.Cursor = nav.New(s.Store)
	s.Binder = shortcut.Bind(s.Hub, func() { s.Prev() }, func() { s.Next() }, opts...)
	return s
}

// Fetch runs one fetch without touching the cursor. Call Sync from the
// goroutine that owns the cursor once it returns.
func (s *Session) Fetch(ctx context.Context) store.FetchStatus {
	return s.Store.Fetch(ctx)
}

// Sync re-clamps the cursor to the current list.
func (s *Session) Sync() {
	s.Cursor.Sync()
}

// Refresh fetches and syncs the cursor.
func (s *Session) Refresh(ctx context.Context) store.FetchStatus {
	st := s.Fetch(ctx)
	s.Sync()
	logging.For("app").WithField("phase", st.Phase).WithField("count", s.Store.Len()).Debug("refreshed")
	return st
}

// Prev steps back; false at the start.
func (s *Session) Prev() bool { return s.Cursor.Prev() }

// Next steps forward; false at the end.
func (s *Session) Next() bool { return s.Cursor.Next() }

// Select jumps to index i.
func (s *Session) Select(i int) error { return s.Cursor.SetIndex(i) }

// Selected returns the profile under the cursor.
func (s *Session) Selected() (profile.Profile, bool) {
	return s.Store.Profile(s.Cursor.Index())
}

// Close releases the shortcut subscription.
func (s *Session) Close() error {
	return s.Binder.Close()
}
