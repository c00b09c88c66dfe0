package ports

import "go.trai.ch/glint/internal/core/domain"

// TypeCache interns type descriptors for the lifetime of a cache session.
//
//go:generate mockgen -source=type_cache.go -destination=mocks/mock_type_cache.go -package=mocks
type TypeCache interface {
	// Initialize starts a session. Calling it on a live session does nothing.
	Initialize()
	// Destroy ends the session and releases every descriptor it owns.
	Destroy()
	// GetType returns the shared descriptor for the given attributes.
	GetType(
		basic domain.BasicType,
		precision domain.Precision,
		qualifier domain.Qualifier,
		primarySize, secondarySize uint8,
	) *domain.Type
	// Stats reports cache activity.
	Stats() domain.CacheStats
	// Snapshot lists the interned descriptors ordered by key.
	Snapshot() []domain.CacheEntry
}
