// Package render composes classification records and optional enrichment
// facts into structured service documents and serializes them as MDX.
// Rendering is pure: the same inputs always produce byte-identical output.
package render

// Document is a rendered service document before serialization.
type Document struct {
	// Frontmatter is the metadata block at the top of the document.
	Frontmatter Frontmatter

	// Breadcrumb is the navigational path, root to leaf. The leaf crumb
	// has no link.
	Breadcrumb []Crumb

	// Title is the document heading.
	Title string

	// Description is the descriptive paragraph below the heading.
	Description string

	// Sections are the document body sections, in render order.
	Sections []Section
}

// Frontmatter is the document metadata block. String fields that are empty
// are omitted from the serialized output.
type Frontmatter struct {
	ID          string
	Context     string
	Type        string
	Name        string
	Description string
	NAICS       NAICSBlock
	UNSPSC      string
	Wikidata    string
	Wikipedia   string
	Digital     float64
	Category    string
	ServiceType string
}

// NAICSBlock is the nested classification sub-block of the frontmatter.
type NAICSBlock struct {
	Code              string
	Title             string
	Sector            string
	SectorName        string
	Subsector         string
	IndustryGroup     string
	IndustryGroupName string
}

// Crumb is one breadcrumb element.
type Crumb struct {
	Label string
	Link  string
}

// Section is a named document section. Exactly the populated content
// fields are serialized, in the order paragraphs, table, bullets, code.
type Section struct {
	Heading    string
	Paragraphs []string
	Table      *Table
	Bullets    []string
	Code       *CodeBlock
}

// Table is simple tabular section content.
type Table struct {
	Headers []string
	Rows    [][]string
}

// CodeBlock is fenced code section content.
type CodeBlock struct {
	Lang   string
	Source string
}
