package domain

// ArenaStats describes the memory held by an arena.
type ArenaStats struct {
	// Generation is bumped on every reset; handles from older generations are stale.
	Generation uint32
	// Chunks is the number of allocated chunks.
	Chunks int
	// Capacity is the number of slots across all chunks.
	Capacity int
	// InUse is the number of allocated slots.
	InUse int
}

// CacheStats reports type cache activity since the cache was created.
type CacheStats struct {
	// Entries is the number of descriptors in the current session.
	Entries int
	// Hits counts lookups answered from the index.
	Hits uint64
	// Misses counts lookups that constructed a descriptor.
	Misses uint64
	// Sessions counts Initialize calls that created state.
	Sessions uint64
	// Arena describes the current session's arena.
	Arena ArenaStats
}

// CacheEntry is one interned descriptor.
type CacheEntry struct {
	Key  TypeKey
	Type *Type
}
