package naics

import "strings"

// Registry resolves NAICS codes against an immutable classification table.
//
// The zero value is not usable; construct with NewRegistry or
// NewRegistryWithEntries. A Registry is safe for concurrent use because it
// is never mutated after construction.
type Registry struct {
	entries []Entry
	byCode  map[string]int
}

// NewRegistry creates a registry backed by the builtin classification table.
func NewRegistry() *Registry {
	return NewRegistryWithEntries(builtinEntries)
}

// NewRegistryWithEntries creates a registry from an explicit table.
// Entry order is preserved and determines search result order.
func NewRegistryWithEntries(entries []Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)
	for i, e := range r.entries {
		r.byCode[e.Code] = i
	}
	return r
}

// Resolve looks up a code and returns the derived classification record.
// Returns ErrInvalidCode for empty or non-digit input and ErrNotFound when
// the code has no table entry.
func (r *Registry) Resolve(code string) (Record, error) {
	if !isDigits(code) {
		return Record{}, ErrInvalidCode
	}

	i, ok := r.byCode[code]
	if !ok {
		return Record{}, ErrNotFound
	}

	return deriveRecord(r.entries[i]), nil
}

// SearchByKeyword returns records whose title or description contains the
// term, case-insensitively. Results follow table order, so repeated calls
// on the same registry return the same sequence.
func (r *Registry) SearchByKeyword(term string) []Record {
	if term == "" {
		return nil
	}

	needle := strings.ToLower(term)
	var matches []Record
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) {
			matches = append(matches, deriveRecord(e))
		}
	}
	return matches
}

// ListBySector returns all records whose sector code equals sectorCode,
// in table order.
func (r *Registry) ListBySector(sectorCode string) []Record {
	var matches []Record
	for _, e := range r.entries {
		if len(e.Code) >= 2 && e.Code[:2] == sectorCode {
			matches = append(matches, deriveRecord(e))
		}
	}
	return matches
}

// Len returns the number of table entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
