package layout

import (
	"fmt"

	"github.com/c360studio/servicedocs/naming"
)

// PathCollisionError reports two planned documents resolving to the same
// output path. Identifier derivation can fold distinct names together
// ("Svc A" and "SvcA"), and in flat mode leaves share the root namespace
// with index documents; either way the plan refuses to overwrite.
type PathCollisionError struct {
	Path string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("output path collision: two documents resolve to %q", e.Path)
}

// Item is one rendered leaf document entering the plan.
type Item struct {
	// Name is the service name the output path derives from.
	Name string

	// Category and Subcategory are the grouping metadata. Empty values
	// fall into the Uncategorized bucket.
	Category    string
	Subcategory string

	// Content is the rendered leaf document text.
	Content string
}

// Leaf is a planned leaf document.
type Leaf struct {
	Name string
	Path string
}

// Subgroup is the set of leaves sharing a (category, subcategory) pair.
type Subgroup struct {
	Subcategory string
	IndexPath   string
	Leaves      []Leaf
}

// Group is the set of subgroups sharing a category.
type Group struct {
	Category  string
	IndexPath string
	Subgroups []Subgroup
}

// Plan is the planned output document tree. Documents maps every output
// path (leaves and indexes) to its content; Paths preserves a
// deterministic emission order.
type Plan struct {
	Mode      Mode
	Groups    []Group
	Documents map[string]string
	Paths     []string
}

// NewPlan groups items by category and subcategory, assigns per-mode
// output paths, and builds one index document per distinct category and
// subcategory. Grouping preserves first-seen order, so planning the same
// batch twice yields the same plan.
func NewPlan(items []Item, mode Mode) (*Plan, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	plan := &Plan{
		Mode:      mode,
		Documents: make(map[string]string),
	}

	// Group by (category, subcategory), first-seen order.
	groupIdx := make(map[string]int)
	subIdx := make(map[string]map[string]int)
	grouped := make(map[string]map[string][]Item)

	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = Uncategorized
		}
		sub := item.Subcategory
		if sub == "" {
			sub = Uncategorized
		}

		if _, ok := groupIdx[cat]; !ok {
			groupIdx[cat] = len(plan.Groups)
			plan.Groups = append(plan.Groups, Group{Category: cat})
			subIdx[cat] = make(map[string]int)
			grouped[cat] = make(map[string][]Item)
		}
		g := &plan.Groups[groupIdx[cat]]

		if _, ok := subIdx[cat][sub]; !ok {
			subIdx[cat][sub] = len(g.Subgroups)
			g.Subgroups = append(g.Subgroups, Subgroup{Subcategory: sub})
		}
		grouped[cat][sub] = append(grouped[cat][sub], item)
	}

	// Assign paths and collect documents.
	for gi := range plan.Groups {
		g := &plan.Groups[gi]
		g.IndexPath = categoryIndexPath(mode, g.Category)

		for si := range g.Subgroups {
			sg := &g.Subgroups[si]
			sg.IndexPath = subcategoryIndexPath(mode, g.Category, sg.Subcategory)

			for _, item := range grouped[g.Category][sg.Subcategory] {
				leaf := Leaf{
					Name: item.Name,
					Path: leafPath(mode, g.Category, sg.Subcategory, item.Name),
				}
				sg.Leaves = append(sg.Leaves, leaf)
				if err := plan.addDocument(leaf.Path, item.Content); err != nil {
					return nil, err
				}
			}
		}
	}

	// Index documents are added after all leaves so their links are
	// complete.
	for _, g := range plan.Groups {
		for _, sg := range g.Subgroups {
			if err := plan.addDocument(sg.IndexPath, subcategoryIndex(g.Category, sg)); err != nil {
				return nil, err
			}
		}
		if err := plan.addDocument(g.IndexPath, categoryIndex(g)); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// addDocument records a planned document, preserving insertion order.
// A path that is already planned is a collision, never an overwrite.
func (p *Plan) addDocument(path, content string) error {
	if _, exists := p.Documents[path]; exists {
		return &PathCollisionError{Path: path}
	}
	p.Paths = append(p.Paths, path)
	p.Documents[path] = content
	return nil
}

// LeafCount returns the number of planned leaf documents.
func (p *Plan) LeafCount() int {
	n := 0
	for _, g := range p.Groups {
		for _, sg := range g.Subgroups {
			n += len(sg.Leaves)
		}
	}
	return n
}

// leafPath computes a leaf document's output path for a mode.
func leafPath(mode Mode, category, subcategory, name string) string {
	id := naming.Identifier(name)
	switch mode {
	case ModeNestedByCategory:
		return naming.Identifier(category) + "/" + id + ".mdx"
	case ModeNestedByCategoryAndSubcategory:
		return naming.Identifier(category) + "/" + naming.Identifier(subcategory) + "/" + id + ".mdx"
	default:
		return id + ".mdx"
	}
}

// categoryIndexPath computes a category index document's output path.
func categoryIndexPath(mode Mode, category string) string {
	switch mode {
	case ModeNestedByCategory, ModeNestedByCategoryAndSubcategory:
		return naming.Identifier(category) + "/index.mdx"
	default:
		return naming.Identifier(category) + ".mdx"
	}
}

// subcategoryIndexPath computes a subcategory index document's output
// path. Flat-mode index names combine category and subcategory so two
// categories can share a subcategory name without colliding.
func subcategoryIndexPath(mode Mode, category, subcategory string) string {
	switch mode {
	case ModeNestedByCategory:
		return naming.Identifier(category) + "/" + naming.Identifier(subcategory) + ".mdx"
	case ModeNestedByCategoryAndSubcategory:
		return naming.Identifier(category) + "/" + naming.Identifier(subcategory) + "/index.mdx"
	default:
		return naming.Identifier(category+" "+subcategory) + ".mdx"
	}
}
