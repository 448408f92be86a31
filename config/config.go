// Package config provides configuration loading and management for the
// servicedocs generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/servicedocs/layout"
)

// Config represents the complete servicedocs configuration
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Filter     FilterConfig     `yaml:"filter"`
	Watch      WatchConfig      `yaml:"watch"`
}

// OutputConfig configures the generated document tree
type OutputConfig struct {
	// Dir is the directory generated documents are written to
	Dir string `yaml:"dir"`
	// Mode is the layout mode (flat, nested, nested-subcategory)
	Mode string `yaml:"mode"`
	// IncludeExamples controls the usage-example section of leaf documents
	IncludeExamples bool `yaml:"include_examples"`
}

// CatalogConfig configures the service catalog source
type CatalogConfig struct {
	// Path is a YAML catalog file (empty = builtin sample catalog)
	Path string `yaml:"path"`
}

// EnrichmentConfig configures the knowledge-base fact provider
type EnrichmentConfig struct {
	// Enabled controls whether enrichment lookups are issued at all
	Enabled bool `yaml:"enabled"`
	// Endpoint is the SPARQL endpoint URL (empty = public Wikidata)
	Endpoint string `yaml:"endpoint"`
	// Timeout is the per-request timeout
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent overrides the request User-Agent header
	UserAgent string `yaml:"user_agent"`
}

// FilterConfig selects which catalog services are generated
type FilterConfig struct {
	// Include is a list of glob patterns matched against service slugs
	// and codes (empty = include all)
	Include []string `yaml:"include"`
	// Exclude is a list of glob patterns removing services after Include
	Exclude []string `yaml:"exclude"`
}

// WatchConfig configures watch-mode regeneration
type WatchConfig struct {
	// Debounce is how long to wait for more changes before regenerating
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:             "docs/services",
			Mode:            string(layout.ModeNestedByCategoryAndSubcategory),
			IncludeExamples: true,
		},
		Catalog: CatalogConfig{
			Path: "", // Builtin sample catalog
		},
		Enrichment: EnrichmentConfig{
			Enabled: false,
			Timeout: 30 * time.Second,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if _, err := layout.ParseMode(c.Output.Mode); err != nil {
		return fmt.Errorf("output.mode: %w", err)
	}
	if c.Enrichment.Timeout < 0 {
		return fmt.Errorf("enrichment.timeout must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.Mode != "" {
		c.Output.Mode = other.Output.Mode
	}
	if other.Output.IncludeExamples {
		c.Output.IncludeExamples = true
	}

	// Catalog
	if other.Catalog.Path != "" {
		c.Catalog.Path = other.Catalog.Path
	}

	// Enrichment
	if other.Enrichment.Enabled {
		c.Enrichment.Enabled = true
	}
	if other.Enrichment.Endpoint != "" {
		c.Enrichment.Endpoint = other.Enrichment.Endpoint
	}
	if other.Enrichment.Timeout != 0 {
		c.Enrichment.Timeout = other.Enrichment.Timeout
	}
	if other.Enrichment.UserAgent != "" {
		c.Enrichment.UserAgent = other.Enrichment.UserAgent
	}

	// Filter
	if len(other.Filter.Include) > 0 {
		c.Filter.Include = other.Filter.Include
	}
	if len(other.Filter.Exclude) > 0 {
		c.Filter.Exclude = other.Filter.Exclude
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
