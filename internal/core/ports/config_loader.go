package ports

import "go.trai.ch/glint/internal/core/domain"

// ConfigLoader defines the interface for loading the glint configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path selects the default
	// file name; a missing default file yields the default configuration.
	Load(path string) (*domain.Config, error)
}
