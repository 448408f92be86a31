package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/c360studio/servicedocs/catalog"
	"github.com/c360studio/servicedocs/enrich"
	"github.com/c360studio/servicedocs/layout"
	"github.com/c360studio/servicedocs/naics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns canned facts per identifier.
type fakeProvider struct {
	facts map[string]*enrich.Facts
	err   error
	calls []string
}

func (p *fakeProvider) Lookup(_ context.Context, identifier string) (*enrich.Facts, error) {
	p.calls = append(p.calls, identifier)
	if p.err != nil {
		return nil, p.err
	}
	if facts, ok := p.facts[identifier]; ok {
		return facts, nil
	}
	return nil, enrich.ErrNotFound
}

func testServices() []catalog.Service {
	return []catalog.Service{
		{Name: "Custom Software Development", NAICS: "541511", UNSPSC: "81111500", Wikidata: "Q638608", Category: "Professional Services", Subcategory: "Technology"},
		{Name: "Full-Service Restaurant", NAICS: "722511", Wikidata: "Q11707", Category: "Hospitality", Subcategory: "Dining"},
		{Name: "Temporary Help Services", NAICS: "561320"},
	}
}

func TestGenerator_Run(t *testing.T) {
	emitter := NewMemoryEmitter()
	provider := &fakeProvider{
		facts: map[string]*enrich.Facts{
			"Q11707": {
				ExternalID:  "Q11707",
				Label:       "restaurant",
				Description: "single establishment that prepares and serves food",
			},
		},
	}

	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeNestedByCategoryAndSubcategory,
		WithProvider(provider))

	report, err := g.Run(context.Background(), testServices())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Generated)
	assert.Zero(t, report.Failed())
	assert.NotEmpty(t, report.RunID)

	// One lookup per service that carries an identifier.
	assert.Equal(t, []string{"Q638608", "Q11707"}, provider.calls)

	// Enriched leaf carries the facts; the Q638608 miss degrades cleanly.
	restaurant := emitter.Documents["Hospitality/Dining/FullServiceRestaurant.mdx"]
	assert.Contains(t, restaurant, `wikidata: "Q11707"`)
	assert.Contains(t, restaurant, "single establishment that prepares and serves food")

	software := emitter.Documents["ProfessionalServices/Technology/CustomSoftwareDevelopment.mdx"]
	assert.NotContains(t, software, "wikidata:")
	assert.Contains(t, software, `unspsc: "81111500"`)

	// Ungrouped service lands in the Uncategorized tree.
	assert.Contains(t, emitter.Documents, "Uncategorized/Uncategorized/TemporaryHelpServices.mdx")
	assert.Contains(t, emitter.Documents, "Uncategorized/index.mdx")
}

func TestGenerator_Run_NoProvider(t *testing.T) {
	emitter := NewMemoryEmitter()
	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeFlat)

	report, err := g.Run(context.Background(), testServices())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Generated)
}

func TestGenerator_Run_BadRecordContinuesBatch(t *testing.T) {
	emitter := NewMemoryEmitter()
	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeFlat)

	services := []catalog.Service{
		{Name: "Unknown Service", NAICS: "999999", Category: "X", Subcategory: "Y"},
		{Name: "Janitorial Services", NAICS: "561720", Category: "X", Subcategory: "Y"},
	}

	report, err := g.Run(context.Background(), services)
	require.NoError(t, err, "a single bad record never aborts the batch")

	assert.Equal(t, 1, report.Generated)
	require.Equal(t, 1, report.Failed())
	assert.Equal(t, "Unknown Service", report.Failures[0].Service)
	assert.Equal(t, "999999", report.Failures[0].Code)

	assert.Contains(t, emitter.Documents, "JanitorialServices.mdx")
}

func TestGenerator_Run_PathCollisionFailsBatch(t *testing.T) {
	emitter := NewMemoryEmitter()
	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeFlat)

	// Flat mode: the leaf named after its category collides with the
	// category index path.
	services := []catalog.Service{
		{Name: "Janitorial Services", NAICS: "561720", Category: "Janitorial Services", Subcategory: "Cleaning"},
	}

	_, err := g.Run(context.Background(), services)
	require.Error(t, err)

	var collision *layout.PathCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "JanitorialServices.mdx", collision.Path)

	// Nothing reaches the emitter when planning fails.
	assert.Empty(t, emitter.Documents)
}

func TestGenerator_Run_ProviderFailureDegrades(t *testing.T) {
	emitter := NewMemoryEmitter()
	provider := &fakeProvider{err: errors.New("endpoint down")}

	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeFlat, WithProvider(provider))

	report, err := g.Run(context.Background(), testServices())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Generated, "provider failure degrades to unenriched renders")
	assert.Zero(t, report.Failed())
}

func TestGenerator_Run_Filter(t *testing.T) {
	emitter := NewMemoryEmitter()
	filter, err := NewFilter([]string{"custom-*"}, nil)
	require.NoError(t, err)

	g := NewGenerator(naics.NewRegistry(), emitter, layout.ModeFlat, WithFilter(filter))

	report, err := g.Run(context.Background(), testServices())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Generated)
	assert.Equal(t, 2, report.Skipped)
	assert.Contains(t, emitter.Documents, "CustomSoftwareDevelopment.mdx")
}

func TestGenerator_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGenerator(naics.NewRegistry(), NewMemoryEmitter(), layout.ModeFlat)
	_, err := g.Run(ctx, testServices())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter(t *testing.T) {
	svc := catalog.Service{Name: "Custom Software Development", NAICS: "541511"}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    bool
	}{
		{name: "no patterns admits", want: true},
		{name: "include by slug", include: []string{"custom-*"}, want: true},
		{name: "include by code", include: []string{"5415*"}, want: true},
		{name: "include miss", include: []string{"janitorial-*"}, want: false},
		{name: "exclude wins", include: []string{"custom-*"}, exclude: []string{"*software*"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Admit(svc))
		})
	}

	var nilFilter *Filter
	assert.True(t, nilFilter.Admit(svc), "nil filter admits everything")
}

func TestNewFilter_InvalidPattern(t *testing.T) {
	_, err := NewFilter([]string{"[unclosed"}, nil)
	assert.Error(t, err)
}

func TestDirEmitter(t *testing.T) {
	dir := t.TempDir()
	e := NewDirEmitter(dir)

	require.NoError(t, e.Emit(map[string]string{
		"Flat.mdx":            "flat",
		"Nested/Leaf.mdx":     "leaf",
		"Nested/Sub/Deep.mdx": "deep",
	}))

	assert.FileExists(t, dir+"/Flat.mdx")
	assert.FileExists(t, dir+"/Nested/Leaf.mdx")
	assert.FileExists(t, dir+"/Nested/Sub/Deep.mdx")
}
