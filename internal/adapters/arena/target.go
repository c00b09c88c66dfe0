package arena

import (
	"sync"

	"go.trai.ch/glint/internal/core/domain"
)

// Target is the active allocation target: the arena that new objects are
// attributed to. A session owns one and passes it to whoever allocates.
//
// A Target is safe for concurrent use. Use WithRedirect when other goroutines
// may share the Target; a Redirect restore is not atomic with the
// allocations made while it is in effect.
type Target[T any] struct {
	mu     sync.Mutex
	active *Arena[T]
}

// NewTarget creates a target whose active arena is initial (which may be nil).
func NewTarget[T any](initial *Arena[T]) *Target[T] {
	return &Target[T]{active: initial}
}

// Active returns the arena allocations are currently routed to.
func (t *Target[T]) Active() *Arena[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Set makes a the active arena and returns the previous one.
func (t *Target[T]) Set(a *Arena[T]) *Arena[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.active
	t.active = a
	return prev
}

// Redirect makes a the active arena until the returned function is called,
// which restores whatever was active before. Callers defer the restore so it
// also runs when construction panics.
func (t *Target[T]) Redirect(a *Arena[T]) (restore func()) {
	prev := t.Set(a)
	return func() {
		t.Set(prev)
	}
}

// WithRedirect makes a the active arena, allocates a slot from it and hands
// the slot to build, then restores the previous arena. The target stays
// locked from the redirect until the restore, so goroutines sharing it never
// see each other's redirects. The restore also runs when build panics.
//
// build must not call back into t.
func (t *Target[T]) WithRedirect(a *Arena[T], build func(h Handle, slot *T) error) (Handle, *T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.active
	t.active = a
	defer func() { t.active = prev }()

	h, slot, err := t.alloc()
	if err != nil {
		return Handle{}, nil, err
	}
	if err := build(h, slot); err != nil {
		return Handle{}, nil, err
	}
	return h, slot, nil
}

// Alloc allocates a slot from the active arena.
func (t *Target[T]) Alloc() (Handle, *T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.alloc()
}

// alloc allocates from the active arena. Must hold t.mu.
func (t *Target[T]) alloc() (Handle, *T, error) {
	if t.active == nil {
		return Handle{}, nil, domain.ErrNoActiveArena
	}
	h, slot := t.active.Alloc()
	return h, slot, nil
}
