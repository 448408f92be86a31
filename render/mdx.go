package render

import (
	"fmt"
	"strings"
)

// MDX serializes a document to MDX text: a delimited frontmatter block,
// a breadcrumb line, the heading and description, then the body sections.
// Serialization is deterministic; equal documents yield identical bytes.
func MDX(doc *Document) string {
	var sb strings.Builder

	writeFrontmatter(&sb, doc.Frontmatter)
	writeBreadcrumb(&sb, doc.Breadcrumb)

	sb.WriteString("# ")
	sb.WriteString(doc.Title)
	sb.WriteString("\n\n")

	if doc.Description != "" {
		sb.WriteString(doc.Description)
		sb.WriteString("\n\n")
	}

	for _, section := range doc.Sections {
		writeSection(&sb, section)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// writeFrontmatter writes the metadata block. Keys appear in a fixed
// order; empty optional values are omitted rather than written blank.
func writeFrontmatter(sb *strings.Builder, fm Frontmatter) {
	sb.WriteString("---\n")

	writeKey(sb, 0, "id", fm.ID)
	writeKey(sb, 0, "context", fm.Context)
	writeKey(sb, 0, "type", fm.Type)
	writeKey(sb, 0, "name", fm.Name)
	writeKey(sb, 0, "description", fm.Description)

	sb.WriteString("naics:\n")
	writeKey(sb, 1, "code", fm.NAICS.Code)
	writeKey(sb, 1, "title", fm.NAICS.Title)
	writeKey(sb, 1, "sector", fm.NAICS.Sector)
	writeKey(sb, 1, "sectorName", fm.NAICS.SectorName)
	writeKey(sb, 1, "subsector", fm.NAICS.Subsector)
	writeKey(sb, 1, "industryGroup", fm.NAICS.IndustryGroup)
	writeKey(sb, 1, "industryGroupName", fm.NAICS.IndustryGroupName)

	writeKey(sb, 0, "unspsc", fm.UNSPSC)
	writeKey(sb, 0, "wikidata", fm.Wikidata)
	writeKey(sb, 0, "wikipedia", fm.Wikipedia)
	fmt.Fprintf(sb, "digital: %.1f\n", fm.Digital)
	writeKey(sb, 0, "category", fm.Category)
	writeKey(sb, 0, "serviceType", fm.ServiceType)

	sb.WriteString("---\n\n")
}

// writeKey writes one quoted key-value line, skipping empty values.
func writeKey(sb *strings.Builder, indent int, key, value string) {
	if value == "" {
		return
	}
	sb.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(sb, "%s: %q\n", key, value)
}

// writeBreadcrumb writes the navigational path as a single line of links.
// The final crumb is plain text.
func writeBreadcrumb(sb *strings.Builder, crumbs []Crumb) {
	if len(crumbs) == 0 {
		return
	}

	parts := make([]string, 0, len(crumbs))
	for _, c := range crumbs {
		if c.Link != "" {
			parts = append(parts, fmt.Sprintf("[%s](%s)", c.Label, c.Link))
		} else {
			parts = append(parts, c.Label)
		}
	}

	sb.WriteString(strings.Join(parts, " › "))
	sb.WriteString("\n\n")
}

// writeSection writes one body section.
func writeSection(sb *strings.Builder, section Section) {
	sb.WriteString("## ")
	sb.WriteString(section.Heading)
	sb.WriteString("\n\n")

	for _, p := range section.Paragraphs {
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}

	if section.Table != nil {
		writeTable(sb, section.Table)
	}

	for _, b := range section.Bullets {
		sb.WriteString("- ")
		sb.WriteString(b)
		sb.WriteString("\n")
	}
	if len(section.Bullets) > 0 {
		sb.WriteString("\n")
	}

	if section.Code != nil {
		sb.WriteString("```")
		sb.WriteString(section.Code.Lang)
		sb.WriteString("\n")
		sb.WriteString(section.Code.Source)
		sb.WriteString("\n```\n\n")
	}
}

// writeTable writes tabular content as a markdown table.
func writeTable(sb *strings.Builder, table *Table) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(table.Headers, " | "))
	sb.WriteString(" |\n|")
	for range table.Headers {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range table.Rows {
		sb.WriteString("| ")
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString(" |\n")
	}
	sb.WriteString("\n")
}
