// Package config provides the configuration loader for glint.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/glint/internal/core/domain"
	"go.trai.ch/glint/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. An empty path means
// domain.ConfigFileName in the working directory, which may be absent.
func (l *Loader) Load(path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Glintfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := l.toDomain(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) toDomain(file *Glintfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	cfg.JSONLogs = file.Log.JSON

	switch scope := domain.CacheScope(file.Cache.Scope); scope {
	case "":
	case domain.ScopeProcess, domain.ScopeSession:
		cfg.Scope = scope
	default:
		return nil, zerr.With(domain.ErrInvalidCacheScope, "scope", file.Cache.Scope)
	}

	if file.Cache.ChunkSize != nil {
		if *file.Cache.ChunkSize <= 0 {
			return nil, zerr.With(domain.ErrInvalidChunkSize, "chunk_size", *file.Cache.ChunkSize)
		}
		cfg.ChunkSize = *file.Cache.ChunkSize
	}

	if file.Cache.InitialCapacity != nil {
		if *file.Cache.InitialCapacity <= 0 {
			l.Logger.Warn(fmt.Sprintf("ignoring non-positive initial_capacity %d", *file.Cache.InitialCapacity))
		} else {
			cfg.InitialCapacity = *file.Cache.InitialCapacity
		}
	}

	cfg.Prewarm = make([]domain.TypeSpec, 0, len(file.Prewarm))
	for _, text := range file.Prewarm {
		spec, err := domain.ParseTypeSpec(text)
		if err != nil {
			return nil, zerr.Wrap(err, "invalid prewarm entry")
		}
		cfg.Prewarm = append(cfg.Prewarm, spec)
	}

	return cfg, nil
}
