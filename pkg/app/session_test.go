package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"tableflip.dev/fip/pkg/shortcut"
	"tableflip.dev/fip/pkg/source"
	"tableflip.dev/fip/pkg/store"
)

const sheetBody = `{
  "range": "Participants!A1:J3",
  "majorDimension": "ROWS",
  "values": [
    ["SLOT_SCHEDULE","CATEGORY","FIRST_AND_LAST_NAME","FIRST_NAME","LAST_NAME","FLAG","PARTICIPANT_PHOTO","CATEGORY_IMAGE","FLAG_IMAGE","AGE_ON_EVENT"],
    ["10:00","Junior","Ana Lima","Ana","Lima","BR","ana.png","junior.png","br.png","14"],
    ["10:05","Senior","Bo Chen","Bo","Chen","CN","bo.png","senior.png","cn.png","31"]
  ]
}`

func newSheetSession(t *testing.T, body string, opts ...shortcut.Option) *Session {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := source.NewClient(source.HTTPConfig{})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	fetcher := source.NewSheets(source.SheetConfig{
		ID:       "sheet-123",
		Range:    "Participants!A1:J",
		APIKey:   "secret",
		Endpoint: srv.URL,
	}, client)
	s := NewSession(fetcher, opts...)
	t.Cleanup(func() { s.Close() })
	return s
}

func release(sig shortcut.Signal) shortcut.Event {
	return shortcut.Event{Signal: sig, Phase: shortcut.PhaseRelease}
}

func TestSessionEndToEnd(t *testing.T) {
	s := newSheetSession(t, sheetBody)

	st := s.Refresh(context.Background())
	if st.Phase != store.PhaseSuccess {
		t.Fatalf("expected success, got %v (%s)", st.Phase, st.Message)
	}
	if s.Store.Len() != 2 {
		t.Fatalf("expected 2 profiles, got %d", s.Store.Len())
	}
	p, ok := s.Selected()
	if !ok || p.DisplayName() != "Ana Lima" {
		t.Fatalf("unexpected first selection %+v", p)
	}
	if !s.Cursor.PrevDisabled() || s.Cursor.NextDisabled() {
		t.Fatal("expected only prev disabled at index 0")
	}

	s.Hub.Publish(release(shortcut.Forward))
	if s.Cursor.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Cursor.Index())
	}
	if !s.Cursor.NextDisabled() || s.Cursor.PrevDisabled() {
		t.Fatal("expected only next disabled at the last profile")
	}
	p, _ = s.Selected()
	if p.AgeOnEvent != "31" || p.Category != "Senior" {
		t.Fatalf("unexpected second profile %+v", p)
	}

	s.Hub.Publish(release(shortcut.Forward))
	if s.Cursor.Index() != 1 {
		t.Fatalf("forward at end moved cursor to %d", s.Cursor.Index())
	}

	s.Binder.Disable()
	s.Hub.Publish(release(shortcut.Backward))
	if s.Cursor.Index() != 1 {
		t.Fatal("inactive binder moved the cursor")
	}
	s.Binder.Enable()
	s.Hub.Publish(release(shortcut.Backward))
	if s.Cursor.Index() != 0 {
		t.Fatalf("expected index 0, got %d", s.Cursor.Index())
	}
}

func TestSessionPressTrigger(t *testing.T) {
	s := newSheetSession(t, sheetBody, shortcut.WithTrigger(shortcut.PhasePress))
	s.Refresh(context.Background())

	s.Hub.Publish(release(shortcut.Forward))
	if s.Cursor.Index() != 0 {
		t.Fatal("release should not fire a press binder")
	}
	s.Hub.Publish(shortcut.Event{Signal: shortcut.Forward, Phase: shortcut.PhasePress})
	if s.Cursor.Index() != 1 {
		t.Fatalf("expected index 1, got %d", s.Cursor.Index())
	}
}

func TestSessionRefreshShrinksCursor(t *testing.T) {
	var body atomic.Value
	body.Store(sheetBody)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body.Load().(string))
	}))
	defer srv.Close()

	client, _ := source.NewClient(source.HTTPConfig{})
	s := NewSession(source.NewSheets(source.SheetConfig{ID: "x", Range: "A1:J", APIKey: "k", Endpoint: srv.URL}, client))
	defer s.Close()

	s.Refresh(context.Background())
	if err := s.Select(1); err != nil {
		t.Fatalf("select: %v", err)
	}

	body.Store(`{"values":[["SLOT_SCHEDULE"],["09:00"]]}`)
	s.Refresh(context.Background())
	if s.Store.Len() != 1 || s.Cursor.Index() != 0 {
		t.Fatalf("expected clamp to 0 of 1, got %d of %d", s.Cursor.Index(), s.Store.Len())
	}
}

func TestSessionFailureKeepsSelection(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, `{"error":{"message":"quota"}}`, http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, sheetBody)
	}))
	defer srv.Close()

	client, _ := source.NewClient(source.HTTPConfig{})
	s := NewSession(source.NewSheets(source.SheetConfig{ID: "x", Range: "A1:J", APIKey: "k", Endpoint: srv.URL}, client))
	defer s.Close()

	s.Refresh(context.Background())
	s.Next()

	fail.Store(true)
	st := s.Refresh(context.Background())
	if !st.Failed() {
		t.Fatalf("expected failure, got %v", st.Phase)
	}
	if s.Store.Len() != 2 || s.Cursor.Index() != 1 {
		t.Fatalf("failure disturbed state: len %d index %d", s.Store.Len(), s.Cursor.Index())
	}
}
