package render

import (
	"testing"

	"github.com/c360studio/servicedocs/enrich"
	"github.com/c360studio/servicedocs/naics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() naics.Record {
	return naics.Record{
		Code:              "541511",
		Title:             "Custom Computer Programming Services",
		Description:       "Establishments primarily engaged in writing, modifying, testing, and supporting software.",
		SectorCode:        "54",
		SectorName:        "Professional, Scientific, and Technical Services",
		SubsectorCode:     "541",
		IndustryGroupCode: "5415",
		IndustryGroupName: "Computer Systems Design and Related Services",
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render(testRecord(), nil, Options{IncludeExamples: true, UNSPSC: "81111500"})
	require.NoError(t, err)

	fm := doc.Frontmatter
	assert.Equal(t, "custom-computer-programming-services", fm.ID)
	assert.Equal(t, "https://schema.org", fm.Context)
	assert.Equal(t, "Service", fm.Type)
	assert.Equal(t, "Custom Computer Programming Services", fm.Name)
	assert.Equal(t, "541511", fm.NAICS.Code)
	assert.Equal(t, "54", fm.NAICS.Sector)
	assert.Equal(t, "5415", fm.NAICS.IndustryGroup)
	assert.Equal(t, "81111500", fm.UNSPSC)
	assert.Equal(t, "Professional Services", fm.Category)
	assert.InDelta(t, 1.0, fm.Digital, 0.0001)

	require.Len(t, doc.Breadcrumb, 4)
	assert.Equal(t, Crumb{Label: "Home", Link: "/"}, doc.Breadcrumb[0])
	assert.Equal(t, "/services/professional-services", doc.Breadcrumb[2].Link)
	assert.Empty(t, doc.Breadcrumb[3].Link, "leaf crumb has no link")

	headings := sectionHeadings(doc)
	assert.Equal(t, []string{"Service Properties", "Classification", "Usage Examples", "Resources"}, headings)
}

func TestRenderer_Render_ExamplesOmitted(t *testing.T) {
	r := NewRenderer()

	record := naics.Record{
		Code:       "611110",
		Title:      "Elementary and Secondary Schools",
		SectorCode: "61",
		SectorName: "Educational Services",
	}

	doc, err := r.Render(record, nil, Options{IncludeExamples: false})
	require.NoError(t, err)

	assert.Equal(t, "Elementary and Secondary Schools service.", doc.Description,
		"empty description is synthesized from the title")
	assert.NotContains(t, sectionHeadings(doc), "Usage Examples")
}

func TestRenderer_Render_FactsPrecedence(t *testing.T) {
	r := NewRenderer()

	facts := &enrich.Facts{
		ExternalID:  "Q11707",
		Label:       "restaurant",
		Description: "single establishment that prepares and serves food",
		ArticleURL:  "https://en.wikipedia.org/wiki/Restaurant",
	}

	doc, err := r.Render(testRecord(), facts, Options{})
	require.NoError(t, err)

	assert.Equal(t, "restaurant", doc.Title, "non-empty facts label overrides the record title")
	assert.Equal(t, "single establishment that prepares and serves food", doc.Description)
	assert.Equal(t, "Q11707", doc.Frontmatter.Wikidata)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Restaurant", doc.Frontmatter.Wikipedia)
	assert.Equal(t, "Custom Computer Programming Services", doc.Frontmatter.ServiceType,
		"serviceType stays the classification title")
}

func TestRenderer_Render_EmptyFactsFallBack(t *testing.T) {
	r := NewRenderer()

	doc, err := r.Render(testRecord(), &enrich.Facts{ExternalID: "Q42"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "Custom Computer Programming Services", doc.Title)
	assert.Contains(t, doc.Description, "Establishments primarily engaged")
}

func TestRenderer_Render_UnknownSectorUsesDefaultCategory(t *testing.T) {
	r := NewRenderer()

	record := naics.Record{Code: "991110", Title: "Experimental Services", SectorCode: "99"}
	doc, err := r.Render(record, nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, "General Services", doc.Frontmatter.Category)
}

func TestRenderer_Render_InvalidRecord(t *testing.T) {
	r := NewRenderer()

	_, err := r.Render(naics.Record{Title: "No Code"}, nil, Options{})
	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)

	_, err = r.Render(naics.Record{Code: "541511"}, nil, Options{})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "541511", invalid.Code)
}

func TestRenderer_Render_Deterministic(t *testing.T) {
	r := NewRenderer()

	first, err := r.Render(testRecord(), nil, Options{IncludeExamples: true})
	require.NoError(t, err)
	second, err := r.Render(testRecord(), nil, Options{IncludeExamples: true})
	require.NoError(t, err)

	assert.Equal(t, MDX(first), MDX(second), "rendering is pure")
}

func sectionHeadings(doc *Document) []string {
	headings := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		headings = append(headings, s.Heading)
	}
	return headings
}
