// Package config loads board-generation settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ChicagoDave/boardgen/pkg/board"
)

// ProjectFile is the config file name looked up by LoadProject.
const ProjectFile = "board.yaml"

// DefaultIterations is the restart budget used when a stage sets none.
const DefaultIterations = 1000

// Default returns the configuration of the standard board.
func Default() *Config {
	return &Config{
		ConfigVersion: "0.1.0",
		Iterations: Iterations{
			Numbers:   DefaultIterations,
			Resources: DefaultIterations,
		},
		Resources: board.DefaultCatalog(),
	}
}

// Load reads a board config from a YAML file. The file is decoded over
// Default, so keys it omits keep their default values while keys it sets,
// zero included, are taken as written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return cfg, nil
}

// LoadProject loads a board config from a project directory.
// It looks for board.yaml in the given directory.
func LoadProject(projectDir string) (*Config, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
