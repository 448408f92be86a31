// Package layout plans the output document tree for a batch of rendered
// service documents: per-mode output paths plus the category and
// subcategory index documents that link every leaf.
package layout

import "fmt"

// Mode selects the output path convention.
type Mode string

const (
	// ModeFlat places every document at the root, named by identifier.
	ModeFlat Mode = "flat"

	// ModeNestedByCategory nests leaves one level under their category.
	ModeNestedByCategory Mode = "nested"

	// ModeNestedByCategoryAndSubcategory nests leaves two levels, under
	// category then subcategory.
	ModeNestedByCategoryAndSubcategory Mode = "nested-subcategory"
)

// ParseMode resolves a mode name. Returns an error for unknown names.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFlat, ModeNestedByCategory, ModeNestedByCategoryAndSubcategory:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown layout mode %q (supported: flat, nested, nested-subcategory)", s)
}

// Uncategorized is the bucket for services missing category or
// subcategory metadata. Such services are grouped here, never dropped.
const Uncategorized = "Uncategorized"
