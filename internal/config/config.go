// Package config loads the CLI's optional yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds CLI configuration. Flags override config values.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Images  ImagesConfig  `yaml:"images"`
	Preview PreviewConfig `yaml:"preview"`
}

// OutputConfig defines where the Markdown document is written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // Default output directory (empty = input directory)
	Filename string `yaml:"filename"` // Output file name (default "course.md")
}

// ImagesConfig defines image asset copying.
type ImagesConfig struct {
	Copy bool   `yaml:"copy"` // Copy static/ images next to the output
	Dir  string `yaml:"dir"`  // Directory name for copied images (default "images")
}

// PreviewConfig defines the optional HTML preview.
type PreviewConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Filename: "course.md"},
		Images: ImagesConfig{Copy: true, Dir: "images"},
	}
}

// Load reads and parses the config at path, applied on top of defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if len(data) > maxConfigSize {
		return cfg, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, maxConfigSize)
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// LoadDefault searches the conventional locations: ./olx2md.yaml, then
// ~/.config/olx2md/config.yaml. found is false when no file exists, in
// which case the defaults are returned without error.
func LoadDefault() (cfg Config, found bool, err error) {
	for _, path := range searchPaths() {
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err = Load(path)
		return cfg, true, err
	}
	return Default(), false, nil
}

func searchPaths() []string {
	paths := []string{"olx2md.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "olx2md", "config.yaml"))
	}
	return paths
}
