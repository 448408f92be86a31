// Package enrich defines the external fact provider contract and the
// enrichment facts model. Implementations live in subpackages; the core
// only depends on this interface so renders stay testable without network
// access.
package enrich

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a provider when no facts exist for an
// identifier. Absence is a valid state, not a failure: callers fold it
// into an unenriched render.
var ErrNotFound = errors.New("no enrichment facts found")

// Provider looks up enrichment facts for an external identifier.
//
// Implementations issue at most one request per call and do not batch,
// cache, or retry; any such strategy belongs to the implementation's
// caller. Lookup must return ErrNotFound (possibly wrapped) when the
// identifier resolves to nothing.
type Provider interface {
	Lookup(ctx context.Context, identifier string) (*Facts, error)
}
