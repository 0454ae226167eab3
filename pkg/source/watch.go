package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/fip/pkg/logging"
)

// Change is emitted by WatchFile when the watched file was written, created,
// renamed or removed.
type Change struct {
	Path string
	At   time.Time
}

// DefaultWatchDelay coalesces editor save bursts into one change.
const DefaultWatchDelay = 150 * time.Millisecond

// WatchFile streams changes to path until ctx is cancelled. The parent
// directory is watched so atomic replace-on-save is seen. Callers should
// drain the channel; changes are dropped while the consumer is busy. The
// channel is closed once ctx is done or the watcher fails.
func WatchFile(ctx context.Context, path string, delay time.Duration) (<-chan Change, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("source: resolve %s: %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultWatchDelay
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("source: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logging.For("watch").WithError(err).Warn("watcher close")
			}
		})
	}

	dir, name := filepath.Dir(abs), filepath.Base(abs)
	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("source: watch %s: %w", dir, err)
	}

	changes := make(chan Change, 1)

	go func() {
		var mu sync.Mutex
		closed := false
		defer func() {
			mu.Lock()
			closed = true
			close(changes)
			mu.Unlock()
		}()
		defer closeWatcher()

		send := func(c Change) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case changes <- c:
			default:
				// A change is already pending; the consumer re-reads the
				// whole file anyway.
			}
		}

		throttle := newThrottle(delay)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.For("watch").WithError(err).Warn("watcher error")
				throttle.Enqueue(func() { send(Change{Path: abs, At: time.Now()}) })
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != name {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(func() { send(Change{Path: abs, At: time.Now()}) })
			}
		}
	}()

	return changes, nil
}

// throttle runs the most recently enqueued func once per quiet period.
type throttle struct {
	mu    sync.Mutex
	timer *time.Timer
	fn    func()
	delay time.Duration
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

func (t *throttle) Enqueue(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fn = fn
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, t.flush)
	}
}

func (t *throttle) flush() {
	t.mu.Lock()
	fn := t.fn
	t.fn = nil
	t.timer = nil
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (t *throttle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.fn = nil
	t.mu.Unlock()
}
