package layout

import (
	"fmt"
	"strings"

	"github.com/c360studio/servicedocs/naming"
)

// categoryIndex renders the index document for one category: a heading
// plus a linked entry per member subcategory.
func categoryIndex(g Group) string {
	var sb strings.Builder

	writeIndexFrontmatter(&sb, g.Category, "CategoryIndex")

	fmt.Fprintf(&sb, "# %s\n\n", g.Category)
	fmt.Fprintf(&sb, "Service types in the %s category, by subcategory.\n\n", g.Category)

	for _, sg := range g.Subgroups {
		fmt.Fprintf(&sb, "- [%s](%s) (%d)\n", sg.Subcategory, relLink(g.IndexPath, sg.IndexPath), len(sg.Leaves))
	}

	return sb.String()
}

// subcategoryIndex renders the index document for one subcategory: a
// heading plus a linked entry per member leaf document.
func subcategoryIndex(category string, sg Subgroup) string {
	var sb strings.Builder

	writeIndexFrontmatter(&sb, sg.Subcategory, "SubcategoryIndex")

	fmt.Fprintf(&sb, "# %s\n\n", sg.Subcategory)
	fmt.Fprintf(&sb, "%s service types in the %s category.\n\n", sg.Subcategory, category)

	for _, leaf := range sg.Leaves {
		fmt.Fprintf(&sb, "- [%s](%s)\n", leaf.Name, relLink(sg.IndexPath, leaf.Path))
	}

	return sb.String()
}

// writeIndexFrontmatter writes the minimal metadata block index documents
// carry.
func writeIndexFrontmatter(sb *strings.Builder, name, docType string) {
	sb.WriteString("---\n")
	fmt.Fprintf(sb, "id: %q\n", naming.PathSlug(name))
	fmt.Fprintf(sb, "type: %q\n", docType)
	fmt.Fprintf(sb, "name: %q\n", name)
	sb.WriteString("---\n\n")
}

// relLink computes the link from one planned document to another, without
// the .mdx extension. Targets are always in the source document's
// directory or a subdirectory of it.
func relLink(fromPath, toPath string) string {
	target := strings.TrimSuffix(toPath, ".mdx")

	dir := ""
	if i := strings.LastIndex(fromPath, "/"); i >= 0 {
		dir = fromPath[:i+1]
	}
	target = strings.TrimPrefix(target, dir)

	return "./" + target
}
