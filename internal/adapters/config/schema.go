package config

// Glintfile represents the structure of the glint.yaml configuration file.
type Glintfile struct {
	Cache   CacheDTO `yaml:"cache"`
	Log     LogDTO   `yaml:"log"`
	Prewarm []string `yaml:"prewarm"`
}

// CacheDTO represents the type cache section of the configuration.
type CacheDTO struct {
	Scope           string `yaml:"scope"`
	ChunkSize       *int   `yaml:"chunk_size"`
	InitialCapacity *int   `yaml:"initial_capacity"`
}

// LogDTO represents the logging section of the configuration.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
