package generate

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/servicedocs/catalog"
	"github.com/c360studio/servicedocs/naming"
)

// Filter selects catalog services by glob patterns matched against the
// service's path slug and its classification code. An empty include list
// admits everything; excludes are applied after includes.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a filter. Patterns are validated eagerly so a bad
// pattern fails the run instead of silently matching nothing.
func NewFilter(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if _, err := doublestar.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Admit reports whether a service passes the filter.
func (f *Filter) Admit(svc catalog.Service) bool {
	if f == nil {
		return true
	}

	slug := naming.PathSlug(svc.Name)

	if len(f.include) > 0 && !matchesAny(f.include, slug, svc.NAICS) {
		return false
	}
	return !matchesAny(f.exclude, slug, svc.NAICS)
}

// matchesAny reports whether any pattern matches any of the candidates.
func matchesAny(patterns []string, candidates ...string) bool {
	for _, pattern := range patterns {
		for _, candidate := range candidates {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}
