package shortcut

import (
	"sync"

	"tableflip.dev/fip/pkg/logging"
)

// Binder routes Backward and Forward events from a Source to step
// callbacks while active. The subscription is taken in Bind and released by
// Close.
type Binder struct {
	mu       sync.Mutex
	active   bool
	closed   bool
	trigger  Phase
	backward func()
	forward  func()

	unsubscribe func()
}

// Option configures a Binder.
type Option func(*Binder)

// WithTrigger selects the phase that fires callbacks. The default is
// PhaseRelease.
func WithTrigger(p Phase) Option {
	return func(b *Binder) { b.trigger = p }
}

// Inactive starts the binder disabled.
func Inactive() Option {
	return func(b *Binder) { b.active = false }
}

// Bind subscribes to src and returns an active binder.
func Bind(src Source, backward, forward func(), opts ...Option) *Binder {
	b := &Binder{
		active:   true,
		trigger:  PhaseRelease,
		backward: backward,
		forward:  forward,
	}
	for _, opt := range opts {
		opt(b)
	}
	if src != nil {
		b.unsubscribe = src.Subscribe(b.handle)
	}
	return b
}

func (b *Binder) handle(ev Event) {
	b.mu.Lock()
	if b.closed || !b.active || ev.Phase != b.trigger {
		b.mu.Unlock()
		return
	}
	var fn func()
	switch ev.Signal {
	case Backward:
		fn = b.backward
	case Forward:
		fn = b.forward
	}
	b.mu.Unlock()

	if fn != nil {
		logging.For("shortcut").WithField("signal", ev.Signal).Debug("shortcut fired")
		fn()
	}
}

// Enable lets events through.
func (b *Binder) Enable() {
	b.mu.Lock()
	b.active = true
	b.mu.Unlock()
}

// Disable drops events until Enable is called.
func (b *Binder) Disable() {
	b.mu.Lock()
	b.active = false
	b.mu.Unlock()
}

// Active reports whether events are delivered.
func (b *Binder) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active && !b.closed
}

// Trigger reports the phase that fires callbacks.
func (b *Binder) Trigger() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trigger
}

// Close releases the subscription. It is safe to call more than once.
func (b *Binder) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	unsub := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	return nil
}
