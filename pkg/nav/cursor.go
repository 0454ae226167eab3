// Package nav provides the bounded selection cursor over the participant
// list.
package nav

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutOfRange is returned by SetIndex for targets outside the list.
var ErrOutOfRange = errors.New("nav: index out of range")

// Lengther is a read-only view of the list being navigated.
type Lengther interface {
	Len() int
}

// LenFunc adapts a func to Lengther.
type LenFunc func() int

// Len implements Lengther.
func (f LenFunc) Len() int { return f() }

// Cursor keeps 0 <= Index() < n whenever the list is non-empty. Every index
// change notifies observers. Cursor is driven from the UI loop and is not
// safe for concurrent use.
type Cursor struct {
	list  Lengther
	index int

	observers map[int]func(int)
	nextObs   int
}

// New returns a cursor at index 0 over list.
func New(list Lengther) *Cursor {
	return &Cursor{list: list, observers: make(map[int]func(int))}
}

// Observe registers fn to receive the new index after every change.
func (c *Cursor) Observe(fn func(index int)) (cancel func()) {
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Cursor) notify() {
	ids := make([]int, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := c.observers[id]; ok {
			fn(c.index)
		}
	}
}

func (c *Cursor) length() int {
	if c.list == nil {
		return 0
	}
	return c.list.Len()
}

// Index returns the selected position.
func (c *Cursor) Index() int { return c.index }

// Len returns the current list length.
func (c *Cursor) Len() int { return c.length() }

// Prev moves one step back. It is a no-op at the first entry.
func (c *Cursor) Prev() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	c.notify()
	return true
}

// Next moves one step forward. It is a no-op at the last entry and on an
// empty list.
func (c *Cursor) Next() bool {
	if c.index >= c.length()-1 {
		return false
	}
	c.index++
	c.notify()
	return true
}

// PrevDisabled reports whether Prev would do nothing.
func (c *Cursor) PrevDisabled() bool { return c.index == 0 }

// NextDisabled reports whether Next would do nothing.
func (c *Cursor) NextDisabled() bool { return c.index >= c.length()-1 }

// SetIndex jumps to i and notifies observers, even when i is already
// selected.
func (c *Cursor) SetIndex(i int) error {
	if n := c.length(); i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, n)
	}
	c.index = i
	c.notify()
	return nil
}

// Sync re-clamps the index after the underlying list changed length.
func (c *Cursor) Sync() {
	n := c.length()
	target := c.index
	if target > n-1 {
		target = n - 1
	}
	if target < 0 {
		target = 0
	}
	if target == c.index {
		return
	}
	c.index = target
	c.notify()
}
