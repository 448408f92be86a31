package render

import (
	"fmt"

	"github.com/c360studio/servicedocs/enrich"
	"github.com/c360studio/servicedocs/naics"
	"github.com/c360studio/servicedocs/naming"
)

// Options controls per-document rendering.
type Options struct {
	// IncludeExamples controls whether the usage-example section is
	// rendered. When false the section is omitted entirely.
	IncludeExamples bool

	// UNSPSC is the optional product/service classification code to
	// include in the metadata and classification section.
	UNSPSC string
}

// Renderer composes classification records into service documents.
// A Renderer holds no mutable state; the same inputs always yield the
// same document.
type Renderer struct{}

// NewRenderer creates a document renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render builds a service document from a classification record and
// optional enrichment facts. facts may be nil. A record missing its code
// or title returns an InvalidRecordError.
func (r *Renderer) Render(record naics.Record, facts *enrich.Facts, opts Options) (*Document, error) {
	if record.Code == "" {
		return nil, &InvalidRecordError{Reason: "missing code"}
	}
	if record.Title == "" {
		return nil, &InvalidRecordError{Code: record.Code, Reason: "missing title"}
	}

	title := record.Title
	if facts != nil && facts.Label != "" {
		title = facts.Label
	}

	description := record.Description
	if facts != nil && facts.Description != "" {
		description = facts.Description
	}
	if description == "" {
		description = fmt.Sprintf("%s service.", title)
	}

	category := categoryLabel(record.SectorCode)
	digital := naics.DigitalScore(record.SectorCode, record.Title)

	doc := &Document{
		Frontmatter: Frontmatter{
			ID:          naming.PathSlug(title),
			Context:     "https://schema.org",
			Type:        "Service",
			Name:        title,
			Description: description,
			NAICS: NAICSBlock{
				Code:              record.Code,
				Title:             record.Title,
				Sector:            record.SectorCode,
				SectorName:        record.SectorName,
				Subsector:         record.SubsectorCode,
				IndustryGroup:     record.IndustryGroupCode,
				IndustryGroupName: record.IndustryGroupName,
			},
			UNSPSC:      opts.UNSPSC,
			Digital:     digital,
			Category:    category,
			ServiceType: record.Title,
		},
		Breadcrumb: []Crumb{
			{Label: "Home", Link: "/"},
			{Label: "Services", Link: "/services"},
			{Label: category, Link: "/services/" + naming.PathSlug(category)},
			{Label: title},
		},
		Title:       title,
		Description: description,
	}

	if facts != nil {
		doc.Frontmatter.Wikidata = facts.ExternalID
		doc.Frontmatter.Wikipedia = facts.ArticleURL
	}

	doc.Sections = append(doc.Sections, Section{
		Heading: "Service Properties",
		Table:   &propertyTable,
	})

	doc.Sections = append(doc.Sections, r.classificationSection(record, facts, opts, digital))

	if opts.IncludeExamples {
		doc.Sections = append(doc.Sections, r.exampleSection(title, record.Title, category))
	}

	doc.Sections = append(doc.Sections, r.resourcesSection(record, facts))

	return doc, nil
}

// classificationSection summarizes the classification hierarchy and any
// enrichment facts as a bullet list.
func (r *Renderer) classificationSection(record naics.Record, facts *enrich.Facts, opts Options, digital float64) Section {
	bullets := []string{
		fmt.Sprintf("**NAICS Code:** %s — %s", record.Code, record.Title),
	}

	if record.SectorName != "" {
		bullets = append(bullets, fmt.Sprintf("**Sector:** %s — %s", record.SectorCode, record.SectorName))
	} else if record.SectorCode != "" {
		bullets = append(bullets, fmt.Sprintf("**Sector:** %s", record.SectorCode))
	}

	if record.SubsectorCode != "" {
		bullets = append(bullets, fmt.Sprintf("**Subsector:** %s", record.SubsectorCode))
	}

	if record.IndustryGroupCode != "" {
		if record.IndustryGroupName != "" {
			bullets = append(bullets, fmt.Sprintf("**Industry Group:** %s — %s", record.IndustryGroupCode, record.IndustryGroupName))
		} else {
			bullets = append(bullets, fmt.Sprintf("**Industry Group:** %s", record.IndustryGroupCode))
		}
	}

	if opts.UNSPSC != "" {
		bullets = append(bullets, fmt.Sprintf("**UNSPSC Code:** %s", opts.UNSPSC))
	}

	bullets = append(bullets, fmt.Sprintf("**Digital Delivery Score:** %.1f", digital))

	if facts != nil {
		if facts.IndustryRef != nil && facts.IndustryRef.Label != "" {
			bullets = append(bullets, fmt.Sprintf("**Industry:** %s", facts.IndustryRef.Label))
		}
		if facts.ProviderRef != nil && facts.ProviderRef.Label != "" {
			bullets = append(bullets, fmt.Sprintf("**Typical Provider:** %s", facts.ProviderRef.Label))
		}
		if facts.InceptionDate != "" {
			bullets = append(bullets, fmt.Sprintf("**Inception:** %s", facts.InceptionDate))
		}
	}

	return Section{Heading: "Classification", Bullets: bullets}
}

// exampleSection renders a usage example as a fenced code block.
func (r *Renderer) exampleSection(title, serviceType, category string) Section {
	varName := naming.VariableName(title)
	if varName == "" {
		varName = "service"
	}

	source := fmt.Sprintf(`const %s: Service = {
  "@context": "https://schema.org",
  "@type": "Service",
  name: %q,
  serviceType: %q,
  category: %q,
};`, varName, title, serviceType, category)

	return Section{
		Heading: "Usage Examples",
		Code:    &CodeBlock{Lang: "ts", Source: source},
	}
}

// resourcesSection lists the fixed reference link plus conditional
// classification and knowledge-base links.
func (r *Renderer) resourcesSection(record naics.Record, facts *enrich.Facts) Section {
	bullets := []string{
		"[Service — Schema.org](https://schema.org/Service)",
		fmt.Sprintf("[NAICS %s — U.S. Census Bureau](https://www.census.gov/naics/?input=%s&year=2022)", record.Code, record.Code),
	}

	if facts != nil {
		if facts.ExternalID != "" {
			bullets = append(bullets, fmt.Sprintf("[%s — Wikidata](https://www.wikidata.org/wiki/%s)", facts.ExternalID, facts.ExternalID))
		}
		if facts.ArticleURL != "" {
			bullets = append(bullets, fmt.Sprintf("[Article — Wikipedia](%s)", facts.ArticleURL))
		}
		if facts.ImageURL != "" {
			bullets = append(bullets, fmt.Sprintf("[Image](%s)", facts.ImageURL))
		}
	}

	return Section{Heading: "Resources", Bullets: bullets}
}
