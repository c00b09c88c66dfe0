package domain

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "glint.yaml"

	// DefaultChunkSize is the number of descriptors per arena chunk.
	DefaultChunkSize = 64

	// DefaultInitialCapacity is the initial size of the cache index.
	DefaultInitialCapacity = 32
)

// CacheScope selects how long interned descriptors live.
type CacheScope string

const (
	// ScopeProcess shares one cache for the whole process.
	ScopeProcess CacheScope = "process"
	// ScopeSession creates a cache per session and destroys it afterwards.
	ScopeSession CacheScope = "session"
)

// Config is the validated runtime configuration.
type Config struct {
	Scope           CacheScope
	ChunkSize       int
	InitialCapacity int
	JSONLogs        bool
	Prewarm         []TypeSpec
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Scope:           ScopeSession,
		ChunkSize:       DefaultChunkSize,
		InitialCapacity: DefaultInitialCapacity,
	}
}
