package shortcut

import (
	"testing"
)

type counter struct {
	back, fwd int
}

func (c *counter) bind(src Source, opts ...Option) *Binder {
	return Bind(src, func() { c.back++ }, func() { c.fwd++ }, opts...)
}

func TestBinderFiresOnRelease(t *testing.T) {
	hub := NewHub()
	var c counter
	b := c.bind(hub)
	defer b.Close()

	hub.Publish(Event{Signal: Backward, Phase: PhasePress})
	hub.Publish(Event{Signal: Forward, Phase: PhasePress})
	if c.back != 0 || c.fwd != 0 {
		t.Fatalf("press phase fired callbacks: %+v", c)
	}

	hub.Publish(Event{Signal: Backward, Phase: PhaseRelease})
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	if c.back != 1 || c.fwd != 2 {
		t.Fatalf("unexpected counts %+v", c)
	}
}

func TestBinderPressTrigger(t *testing.T) {
	hub := NewHub()
	var c counter
	b := c.bind(hub, WithTrigger(PhasePress))
	defer b.Close()

	hub.Publish(Event{Signal: Forward, Phase: PhasePress})
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	if c.fwd != 1 {
		t.Fatalf("expected one forward, got %d", c.fwd)
	}
}

func TestBinderDisabledDropsEvents(t *testing.T) {
	hub := NewHub()
	var c counter
	b := c.bind(hub)
	defer b.Close()

	b.Disable()
	if b.Active() {
		t.Fatal("expected inactive after Disable")
	}
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	hub.Publish(Event{Signal: Backward, Phase: PhaseRelease})

	b.Enable()
	if c.fwd != 0 || c.back != 0 {
		t.Fatalf("disabled events were deferred or delivered: %+v", c)
	}
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	if c.fwd != 1 {
		t.Fatalf("expected delivery after Enable, got %+v", c)
	}
}

func TestInactiveOption(t *testing.T) {
	hub := NewHub()
	var c counter
	b := c.bind(hub, Inactive())
	defer b.Close()
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	if c.fwd != 0 {
		t.Fatal("inactive binder fired")
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	hub := NewHub()
	var c counter

	for i := 0; i < 5; i++ {
		b := c.bind(hub)
		if hub.Subscribers() != 1 {
			t.Fatalf("iteration %d: expected 1 subscriber, got %d", i, hub.Subscribers())
		}
		if err := b.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		if err := b.Close(); err != nil {
			t.Fatalf("second close: %v", err)
		}
	}
	if hub.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", hub.Subscribers())
	}

	b := c.bind(hub)
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	b.Close()
	hub.Publish(Event{Signal: Forward, Phase: PhaseRelease})
	if c.fwd != 1 {
		t.Fatalf("expected exactly one delivery, got %d", c.fwd)
	}
	if b.Active() {
		t.Fatal("closed binder reports active")
	}
}

func TestParsePhase(t *testing.T) {
	for in, want := range map[string]Phase{"": PhaseRelease, "release": PhaseRelease, "KEYUP": PhaseRelease, "press": PhasePress} {
		got, err := ParsePhase(in)
		if err != nil || got != want {
			t.Fatalf("ParsePhase(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePhase("hold"); err == nil {
		t.Fatal("expected error")
	}
}
