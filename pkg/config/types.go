package config

import "github.com/ChicagoDave/boardgen/pkg/board"

// Config is the top-level run configuration for board generation.
type Config struct {
	ConfigVersion string              `yaml:"config_version" json:"config_version"`
	Seed          int64               `yaml:"seed" json:"seed"`
	Workers       int                 `yaml:"workers" json:"workers"`
	Iterations    Iterations          `yaml:"iterations" json:"iterations"`
	Resources     []board.ResourceDef `yaml:"resources" json:"resources"`
}

// Iterations holds the restart budget of each optimizer stage.
type Iterations struct {
	Numbers   int `yaml:"numbers" json:"numbers"`
	Resources int `yaml:"resources" json:"resources"`
}

// Catalog returns the configured resources as a board catalog.
func (c *Config) Catalog() board.Catalog {
	return board.Catalog(c.Resources)
}
