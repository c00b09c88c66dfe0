// Package typecache interns shader type descriptors.
//
// A Cache maps the five attributes of a type to a single shared *domain.Type
// for the lifetime of a session (Initialize .. Destroy). Descriptors are
// allocated from an arena owned by the session, so they outlive whatever
// scratch arena the caller had active when it asked for them.
package typecache

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dolthub/swiss"
	"go.trai.ch/glint/internal/adapters/arena" //nolint:depguard // The cache owns its arena
	"go.trai.ch/glint/internal/core/domain"
	"go.trai.ch/glint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TypeCache = (*Cache)(nil)

// entry is an interned descriptor and the handle of its arena slot.
type entry struct {
	handle arena.Handle
	typ    *domain.Type
}

// session is the state created by Initialize and dropped by Destroy.
type session struct {
	types *swiss.Map[domain.TypeKey, entry]
	arena *arena.Arena[domain.Type]
}

// Cache is a thread-safe interning cache of type descriptors.
//
// A single mutex serializes every operation, including descriptor
// construction on a miss. The allocation target is redirected to the
// session's arena only while that mutex is held.
type Cache struct {
	mu      sync.Mutex
	current *session
	target  *arena.Target[domain.Type]
	logger  ports.Logger

	chunkSize       int
	initialCapacity int

	hits     uint64
	misses   uint64
	sessions uint64
}

// Option configures a Cache.
type Option func(*Cache)

// WithChunkSize sets how many descriptors each arena chunk holds.
func WithChunkSize(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithInitialCapacity sets the initial size of the key index.
func WithInitialCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.initialCapacity = n
		}
	}
}

// New creates an uninitialized cache. target is the allocation target shared
// with the caller's session and may be shared by several caches; a nil target
// gets a private one. logger may be nil.
func New(target *arena.Target[domain.Type], logger ports.Logger, opts ...Option) *Cache {
	if target == nil {
		target = arena.NewTarget[domain.Type](nil)
	}

	c := &Cache{
		target:          target,
		logger:          logger,
		chunkSize:       domain.DefaultChunkSize,
		initialCapacity: domain.DefaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure applies options. They take effect at the next Initialize that
// creates a session.
func (c *Cache) Configure(opts ...Option) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, opt := range opts {
		opt(c)
	}
}

// Initialize starts a session if none is live. A second call is a no-op.
func (c *Cache) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		return
	}

	c.current = &session{
		types: swiss.NewMap[domain.TypeKey, entry](uint32(c.initialCapacity)),
		arena: arena.New[domain.Type](c.chunkSize),
	}
	c.sessions++
}

// Destroy ends the live session, releasing its arena and every descriptor in
// it. It is a no-op when no session is live.
func (c *Cache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return
	}

	released := c.current.types.Count()
	c.current.arena.Release()
	c.current = nil

	c.logf("type cache destroyed, %d descriptors released", released)
}

// Initialized reports whether a session is live.
func (c *Cache) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

// GetType returns the shared descriptor for the given attributes, building
// and realizing it on first request. It panics with
// domain.ErrCacheNotInitialized outside a session, and with the
// domain.CheckShape error for attributes GLSL cannot spell.
func (c *Cache) GetType(
	basic domain.BasicType,
	precision domain.Precision,
	qualifier domain.Qualifier,
	primarySize, secondarySize uint8,
) *domain.Type {
	_, t, err := c.Intern(basic, precision, qualifier, primarySize, secondarySize)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup is GetType for callers that cannot guarantee the session protocol.
func (c *Cache) Lookup(
	basic domain.BasicType,
	precision domain.Precision,
	qualifier domain.Qualifier,
	primarySize, secondarySize uint8,
) (*domain.Type, error) {
	_, t, err := c.Intern(basic, precision, qualifier, primarySize, secondarySize)
	return t, err
}

// Intern returns the descriptor for the given attributes together with a
// stable handle that Resolve accepts until the session is destroyed.
func (c *Cache) Intern(
	basic domain.BasicType,
	precision domain.Precision,
	qualifier domain.Qualifier,
	primarySize, secondarySize uint8,
) (arena.Handle, *domain.Type, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.current
	if s == nil {
		return arena.Handle{}, nil, domain.ErrCacheNotInitialized
	}

	key := domain.NewTypeKey(basic, precision, qualifier, primarySize, secondarySize)
	if err := domain.CheckShape(basic, primarySize, secondarySize); err != nil {
		return arena.Handle{}, nil, zerr.With(err, "key", key.String())
	}

	if e, ok := s.types.Get(key); ok {
		c.hits++
		return e.handle, e.typ, nil
	}

	e, err := c.construct(s, basic, precision, qualifier, primarySize, secondarySize)
	if err != nil {
		return arena.Handle{}, nil, zerr.With(err, "key", key.String())
	}

	s.types.Put(key, e)
	c.misses++

	return e.handle, e.typ, nil
}

// construct builds a descriptor in the session arena. Must hold c.mu.
func (c *Cache) construct(
	s *session,
	basic domain.BasicType,
	precision domain.Precision,
	qualifier domain.Qualifier,
	primarySize, secondarySize uint8,
) (entry, error) {
	h, t, err := c.target.WithRedirect(s.arena, func(_ arena.Handle, t *domain.Type) error {
		*t = domain.NewType(basic, precision, qualifier, primarySize, secondarySize)
		return t.Realize()
	})
	if err != nil {
		return entry{}, err
	}

	return entry{handle: h, typ: t}, nil
}

// Resolve returns the descriptor behind a handle issued by Intern.
func (c *Cache) Resolve(h arena.Handle) (*domain.Type, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil, domain.ErrCacheNotInitialized
	}
	return c.current.arena.Get(h)
}

// Len returns the number of descriptors in the live session.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return 0
	}
	return c.current.types.Count()
}

// Stats reports cache activity.
func (c *Cache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := domain.CacheStats{
		Hits:     c.hits,
		Misses:   c.misses,
		Sessions: c.sessions,
	}
	if c.current != nil {
		stats.Entries = c.current.types.Count()
		stats.Arena = c.current.arena.Stats()
	}
	return stats
}

// Snapshot lists the descriptors of the live session ordered by key.
func (c *Cache) Snapshot() []domain.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	entries := make([]domain.CacheEntry, 0, c.current.types.Count())
	c.current.types.Iter(func(k domain.TypeKey, e entry) bool {
		entries = append(entries, domain.CacheEntry{Key: k, Type: e.typ})
		return false
	})
	slices.SortFunc(entries, func(a, b domain.CacheEntry) int {
		return a.Key.Compare(b.Key)
	})
	return entries
}

func (c *Cache) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Info(fmt.Sprintf(format, args...))
	}
}
