// Package store owns the committed participant list and the status of the
// fetch that produced it.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/fip/pkg/logging"
	"tableflip.dev/fip/pkg/profile"
	"tableflip.dev/fip/pkg/source"
)

// Snapshot is a consistent copy of the store state.
type Snapshot struct {
	Profiles []profile.Profile
	Status   FetchStatus
}

// Store is the single writer of the profile list. Each Fetch takes a new
// generation; only the newest generation may commit, so a slow fetch that
// settles after a newer one started is discarded.
type Store struct {
	fetcher source.Fetcher
	now     func() time.Time

	mu         sync.RWMutex
	profiles   []profile.Profile
	status     FetchStatus
	generation uint64

	obsMu     sync.Mutex
	observers map[int]func(Snapshot)
	nextObs   int
}

// New returns an idle, empty store reading from fetcher.
func New(fetcher source.Fetcher) *Store {
	return &Store{
		fetcher:   fetcher,
		now:       time.Now,
		profiles:  []profile.Profile{},
		observers: make(map[int]func(Snapshot)),
	}
}

// Source describes the fetcher.
func (s *Store) Source() string {
	if s.fetcher == nil {
		return "none"
	}
	return s.fetcher.String()
}

// Fetch loads a fresh list and commits it if no newer fetch has started in
// the meantime. Errors are recorded in the returned status, never returned.
func (s *Store) Fetch(ctx context.Context) (status FetchStatus) {
	gen := s.begin()
	log := logging.For("store").WithField("generation", gen)

	var (
		next []profile.Profile
		err  error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch aborted: %v", r)
			next = nil
		}
		status = s.settle(gen, next, err)
	}()

	if s.fetcher == nil {
		err = fmt.Errorf("no source configured")
		return
	}

	log.WithField("source", s.fetcher.String()).Debug("fetch started")
	var payload source.Payload
	payload, err = s.fetcher.Fetch(ctx)
	if err != nil {
		return
	}
	next = normalize(payload)
	return
}

func normalize(p source.Payload) []profile.Profile {
	if p.Records != nil {
		recs := make([]map[string]string, len(p.Records))
		for i, r := range p.Records {
			recs[i] = r
		}
		return profile.FromRecords(recs)
	}
	return profile.FromRows(p.Rows)
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.status = FetchStatus{Phase: PhaseLoading, Generation: gen, UpdatedAt: s.now()}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return gen
}

func (s *Store) settle(gen uint64, next []profile.Profile, err error) FetchStatus {
	log := logging.For("store").WithField("generation", gen)

	s.mu.Lock()
	if gen != s.generation {
		current := s.status
		s.mu.Unlock()
		log.WithField("current", current.Generation).Debug("discarding superseded fetch")
		return current
	}
	if err != nil {
		s.status = FetchStatus{Phase: PhaseError, Message: Describe(err), Generation: gen, UpdatedAt: s.now()}
		log.WithError(err).Warn("fetch failed")
	} else {
		if next == nil {
			next = []profile.Profile{}
		}
		s.profiles = next
		s.status = FetchStatus{Phase: PhaseSuccess, Generation: gen, UpdatedAt: s.now()}
		log.WithField("profiles", len(next)).Info("profiles committed")
	}
	status := s.status
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return status
}

// Profiles returns a copy of the committed list.
func (s *Store) Profiles() []profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.profiles)
}

// Profile returns the profile at i.
func (s *Store) Profile(i int) (profile.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.profiles) {
		return profile.Profile{}, false
	}
	return s.profiles[i], true
}

// Len reports the committed list length.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Status returns the status of the newest fetch.
func (s *Store) Status() FetchStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Snapshot returns the list and status read under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Profiles: clone(s.profiles), Status: s.status}
}

// Subscribe registers fn to run after every transition (fetch start and
// commit). fn runs on the fetching goroutine and must not block. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *Store) notify(snap Snapshot) {
	s.obsMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		fns = append(fns, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func clone(in []profile.Profile) []profile.Profile {
	out := make([]profile.Profile, len(in))
	copy(out, in)
	return out
}
