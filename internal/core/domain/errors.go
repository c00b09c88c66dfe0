package domain

import "go.trai.ch/zerr"

var (
	// ErrTypeAlreadyRealized is returned when Realize is called twice on the same descriptor.
	ErrTypeAlreadyRealized = zerr.New("type descriptor already realized")

	// ErrUnknownTypeName is returned when a type name is not a known GLSL type.
	ErrUnknownTypeName = zerr.New("unknown type name")

	// ErrUnknownPrecision is returned when a precision qualifier is not lowp, mediump or highp.
	ErrUnknownPrecision = zerr.New("unknown precision qualifier")

	// ErrUnknownQualifier is returned when a storage qualifier is not recognized.
	ErrUnknownQualifier = zerr.New("unknown storage qualifier")

	// ErrInvalidDimension is returned when a vector or matrix dimension is outside 2..4.
	ErrInvalidDimension = zerr.New("vector and matrix dimensions must be between 2 and 4")

	// ErrNonFloatMatrix is returned when a matrix has a basic type other than float.
	ErrNonFloatMatrix = zerr.New("matrices must have basic type float")

	// ErrInvalidTypeSpec is returned when a type spec does not match "[precision] [qualifier] typename".
	ErrInvalidTypeSpec = zerr.New("invalid type spec, expected: [precision] [qualifier] typename")

	// ErrCacheNotInitialized is raised when the type cache is used before Initialize or after Destroy.
	ErrCacheNotInitialized = zerr.New("type cache is not initialized")

	// ErrArenaReleased is raised when allocating from an arena after Release.
	ErrArenaReleased = zerr.New("arena has been released")

	// ErrNoActiveArena is returned when an allocation target has no active arena.
	ErrNoActiveArena = zerr.New("no active arena")

	// ErrInvalidHandle is returned when a handle does not refer to an allocated slot.
	ErrInvalidHandle = zerr.New("invalid arena handle")

	// ErrStaleHandle is returned when a handle belongs to an arena generation that was reset.
	ErrStaleHandle = zerr.New("stale arena handle")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCacheScope is returned when the cache scope is neither "process" nor "session".
	ErrInvalidCacheScope = zerr.New("invalid cache scope, expected 'process' or 'session'")

	// ErrInvalidChunkSize is returned when the arena chunk size is not positive.
	ErrInvalidChunkSize = zerr.New("arena chunk size must be positive")

	// ErrNoSpecsSpecified is returned when no type specs are given to the types command.
	ErrNoSpecsSpecified = zerr.New("no type specs specified")

	// ErrInterningMismatch is returned when concurrent requests observe different descriptors.
	ErrInterningMismatch = zerr.New("concurrent requests returned different descriptors")
)
