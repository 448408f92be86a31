// Package catalog holds the service entries the generator documents: one
// entry per service type, carrying its classification code, external
// cross-references, and the category/subcategory grouping metadata the
// layout planner consumes.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Service is one service-type entry to document.
type Service struct {
	// Name is the human-readable service name and document title source.
	Name string `yaml:"name"`

	// NAICS is the industry classification code resolved against the
	// registry.
	NAICS string `yaml:"naics"`

	// UNSPSC is the optional product/service classification code.
	UNSPSC string `yaml:"unspsc,omitempty"`

	// Wikidata is the optional knowledge-base entity identifier used for
	// enrichment lookups.
	Wikidata string `yaml:"wikidata,omitempty"`

	// Category and Subcategory group services for the layout planner.
	// Either may be empty; ungrouped services land in the Uncategorized
	// bucket rather than being dropped.
	Category    string `yaml:"category,omitempty"`
	Subcategory string `yaml:"subcategory,omitempty"`
}

// Validate checks the fields required of every entry.
func (s Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if s.NAICS == "" {
		return fmt.Errorf("service %q: naics code is required", s.Name)
	}
	return nil
}

// catalogFile is the YAML file shape.
type catalogFile struct {
	Services []Service `yaml:"services"`
}

// Load reads service entries from a YAML file.
func Load(path string) ([]Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	for _, svc := range file.Services {
		if err := svc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog entry: %w", err)
		}
	}

	return file.Services, nil
}
