// Package arena implements a chunked, generation-checked object arena and the
// allocation target that routes construction into whichever arena is active.
package arena

import (
	"fmt"
	"sync/atomic"

	"go.trai.ch/glint/internal/core/domain"
	"go.trai.ch/zerr"
)

// Handle is a stable reference to a slot in an Arena. It stays valid until
// the arena is reset or released. The zero Handle never refers to a slot.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d@%d", h.index, h.generation)
}

// generations issues arena generations. They are unique per process, so a
// handle is only ever accepted by the arena generation that issued it.
var generations atomic.Uint32

// Arena hands out pointer-stable slots of T from fixed-size chunks. Slots are
// never freed one by one; Reset and Release drop all of them at once.
//
// An Arena is not safe for concurrent use.
type Arena[T any] struct {
	chunkSize  int
	chunks     [][]T
	used       int
	generation uint32
	released   bool
}

// New creates an arena whose chunks hold chunkSize slots.
// A non-positive chunkSize selects domain.DefaultChunkSize.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = domain.DefaultChunkSize
	}
	return &Arena[T]{
		chunkSize:  chunkSize,
		generation: generations.Add(1),
	}
}

// Alloc returns a zeroed slot and its handle. It panics if the arena was released.
func (a *Arena[T]) Alloc() (Handle, *T) {
	if a.released {
		panic(domain.ErrArenaReleased)
	}

	chunk, offset := a.used/a.chunkSize, a.used%a.chunkSize
	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, a.chunkSize))
	}

	slot := &a.chunks[chunk][offset]
	a.used++

	return Handle{index: uint32(a.used), generation: a.generation}, slot
}

// Get resolves a handle issued by this arena.
func (a *Arena[T]) Get(h Handle) (*T, error) {
	if h.index == 0 || h.generation == 0 {
		return nil, zerr.With(domain.ErrInvalidHandle, "handle", h.String())
	}
	if h.generation != a.generation || a.released {
		return nil, zerr.With(domain.ErrStaleHandle, "handle", h.String())
	}
	if int(h.index) > a.used {
		return nil, zerr.With(domain.ErrInvalidHandle, "handle", h.String())
	}

	i := int(h.index) - 1
	return &a.chunks[i/a.chunkSize][i%a.chunkSize], nil
}

// Len returns the number of allocated slots.
func (a *Arena[T]) Len() int { return a.used }

// Generation returns the current generation. Handles carry the generation
// they were issued in.
func (a *Arena[T]) Generation() uint32 { return a.generation }

// Released reports whether Release has been called.
func (a *Arena[T]) Released() bool { return a.released }

// Reset drops every chunk and moves the arena to a new generation, which
// invalidates all outstanding handles.
// Pointers obtained before the reset keep their memory alive but are no
// longer owned by the arena.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.used = 0
	a.generation = generations.Add(1)
}

// Release resets the arena and forbids further allocation.
func (a *Arena[T]) Release() {
	a.Reset()
	a.released = true
}

// Stats reports the arena's memory usage.
func (a *Arena[T]) Stats() domain.ArenaStats {
	return domain.ArenaStats{
		Generation: a.generation,
		Chunks:     len(a.chunks),
		Capacity:   len(a.chunks) * a.chunkSize,
		InUse:      a.used,
	}
}
