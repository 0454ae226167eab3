// Package shortcut binds the two navigation signals of a discrete input
// source to step callbacks.
package shortcut

import (
	"fmt"
	"strings"
	"sync"
)

// Signal is a logical navigation input.
type Signal int

const (
	// Backward steps to the previous profile (left arrow).
	Backward Signal = iota
	// Forward steps to the next profile (right arrow).
	Forward
)

func (s Signal) String() string {
	switch s {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	}
	return fmt.Sprintf("signal(%d)", int(s))
}

// Phase distinguishes key press from key release.
type Phase int

const (
	// PhasePress is reported when the key goes down.
	PhasePress Phase = iota
	// PhaseRelease is reported when the key comes up.
	PhaseRelease
)

func (p Phase) String() string {
	if p == PhaseRelease {
		return "release"
	}
	return "press"
}

// ParsePhase accepts "press" or "release".
func ParsePhase(raw string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "release", "keyup", "up":
		return PhaseRelease, nil
	case "press", "keydown", "down":
		return PhasePress, nil
	}
	return PhasePress, fmt.Errorf("shortcut: unknown trigger %q", raw)
}

// Event is one input occurrence.
type Event struct {
	Signal Signal
	Phase  Phase
}

// Source delivers input events to subscribers until they unsubscribe.
type Source interface {
	Subscribe(fn func(Event)) (unsubscribe func())
}

// Hub is an in-process Source. Publish fans each event out to the current
// subscribers in subscription order.
type Hub struct {
	mu   sync.Mutex
	subs []hubSub
	next int
}

type hubSub struct {
	id int
	fn func(Event)
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe implements Source.
func (h *Hub) Subscribe(fn func(Event)) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs = append(h.subs, hubSub{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, s := range h.subs {
				if s.id == id {
					h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish delivers ev to every subscriber.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	subs := make([]hubSub, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Subscribers reports how many listeners are attached.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
