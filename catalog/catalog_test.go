package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/servicedocs/naics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	content := `services:
  - name: Custom Software Development
    naics: "541511"
    unspsc: "81111500"
    wikidata: Q638608
    category: Professional Services
    subcategory: Technology
  - name: Janitorial Services
    naics: "561720"
`
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	services, err := Load(path)
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "Custom Software Development", services[0].Name)
	assert.Equal(t, "541511", services[0].NAICS)
	assert.Equal(t, "Q638608", services[0].Wikidata)
	assert.Equal(t, "Technology", services[0].Subcategory)

	assert.Empty(t, services[1].Category)
}

func TestLoad_InvalidEntry(t *testing.T) {
	content := `services:
  - name: Missing Code
`
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "naics code is required")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuiltin_CodesResolve(t *testing.T) {
	registry := naics.NewRegistry()

	for _, svc := range Builtin() {
		require.NoError(t, svc.Validate())
		_, err := registry.Resolve(svc.NAICS)
		assert.NoError(t, err, "service %q references unknown code %s", svc.Name, svc.NAICS)
	}
}
