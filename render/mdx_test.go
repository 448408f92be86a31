package render

import (
	"strings"
	"testing"

	"github.com/c360studio/servicedocs/enrich"
	"github.com/stretchr/testify/require"
)

func TestMDX(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		facts    *enrich.Facts
		opts     Options
		expected []string // Substrings that must be present
		absent   []string // Substrings that must not be present
	}{
		{
			name: "full document",
			opts: Options{IncludeExamples: true, UNSPSC: "81111500"},
			expected: []string{
				"---\n",
				`id: "custom-computer-programming-services"`,
				`context: "https://schema.org"`,
				`type: "Service"`,
				"naics:\n",
				`  code: "541511"`,
				`  sector: "54"`,
				`  sectorName: "Professional, Scientific, and Technical Services"`,
				`  industryGroup: "5415"`,
				`unspsc: "81111500"`,
				"digital: 1.0",
				`category: "Professional Services"`,
				"[Home](/) › [Services](/services)",
				"# Custom Computer Programming Services",
				"## Service Properties",
				"| Property | Type | Description |",
				"| availableChannel | ServiceChannel |",
				"## Classification",
				"- **NAICS Code:** 541511",
				"- **Industry Group:** 5415 — Computer Systems Design and Related Services",
				"## Usage Examples",
				"```ts",
				"const customComputerProgrammingServices: Service = {",
				"## Resources",
				"- [Service — Schema.org](https://schema.org/Service)",
				"- [NAICS 541511 — U.S. Census Bureau]",
			},
			absent: []string{
				"wikidata:",
				"wikipedia:",
			},
		},
		{
			name: "enriched document",
			facts: &enrich.Facts{
				ExternalID: "Q638608",
				ArticleURL: "https://en.wikipedia.org/wiki/Custom_software",
			},
			opts: Options{},
			expected: []string{
				`wikidata: "Q638608"`,
				`wikipedia: "https://en.wikipedia.org/wiki/Custom_software"`,
				"- [Q638608 — Wikidata](https://www.wikidata.org/wiki/Q638608)",
				"- [Article — Wikipedia](https://en.wikipedia.org/wiki/Custom_software)",
			},
			absent: []string{
				"## Usage Examples",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := r.Render(testRecord(), tt.facts, tt.opts)
			require.NoError(t, err)

			out := MDX(doc)
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %q to be in output:\n%s", exp, out)
				}
			}
			for _, abs := range tt.absent {
				if strings.Contains(out, abs) {
					t.Errorf("expected %q to be absent from output:\n%s", abs, out)
				}
			}
		})
	}
}

func TestMDX_FrontmatterDelimited(t *testing.T) {
	r := NewRenderer()
	doc, err := r.Render(testRecord(), nil, Options{})
	require.NoError(t, err)

	out := MDX(doc)
	require.True(t, strings.HasPrefix(out, "---\n"))
	require.GreaterOrEqual(t, strings.Count(out, "---\n"), 2, "frontmatter block is delimited")
}
