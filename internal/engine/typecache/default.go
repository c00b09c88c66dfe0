package typecache

import (
	"sync"

	"go.trai.ch/glint/internal/core/domain"
)

var (
	defaultCache *Cache
	defaultOnce  sync.Once
)

// Default returns the process-wide cache. It has its own allocation target
// and no logger. Like any Cache it must be initialized before use.
func Default() *Cache {
	defaultOnce.Do(func() {
		defaultCache = New(nil, nil)
	})
	return defaultCache
}

// Initialize starts the process-wide cache session.
func Initialize() { Default().Initialize() }

// Destroy ends the process-wide cache session.
func Destroy() { Default().Destroy() }

// GetType interns a descriptor in the process-wide cache.
func GetType(
	basic domain.BasicType,
	precision domain.Precision,
	qualifier domain.Qualifier,
	primarySize, secondarySize uint8,
) *domain.Type {
	return Default().GetType(basic, precision, qualifier, primarySize, secondarySize)
}
