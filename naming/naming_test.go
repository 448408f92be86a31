package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Janitorial Services", want: "janitorial-services"},
		{name: "hyphenated word kept", input: "Full-Service Restaurants", want: "full-service-restaurants"},
		{name: "parens stripped", input: "Offices of Physicians (except Mental Health Specialists)", want: "offices-of-physicians-except-mental-health-specialists"},
		{name: "commas dropped", input: "Plumbing, Heating, and Air-Conditioning Contractors", want: "plumbing-heating-and-air-conditioning-contractors"},
		{name: "whitespace runs collapse", input: "Temporary   Help \t Services", want: "temporary-help-services"},
		{name: "empty after stripping", input: "()", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathSlug(tt.input))
		})
	}
}

func TestPathSlug_IsValidPathSegment(t *testing.T) {
	inputs := []string{
		"Full-Service Restaurants",
		"Offices of Physicians (except Mental Health Specialists)",
		"Research and Development in Biotechnology",
		"  leading and trailing  ",
	}

	for _, in := range inputs {
		slug := PathSlug(in)
		assert.Equal(t, strings.ToLower(slug), slug, "must be lowercase: %q", slug)
		assert.NotContains(t, slug, " ")
		assert.NotContains(t, slug, "(")
		assert.NotContains(t, slug, ")")
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Janitorial Services", want: "JanitorialServices"},
		{name: "hyphen is a word boundary", input: "Full-Service Restaurants", want: "FullServiceRestaurants"},
		{name: "parens removed", input: "Other Services (except Public Administration)", want: "OtherServicesExceptPublicAdministration"},
		{name: "digits kept", input: "Solar Electric Power Generation 2022", want: "SolarElectricPowerGeneration2022"},
		{name: "empty", input: "", want: ""},
		{name: "only separators", input: " -() ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(tt.input))
		})
	}
}

func TestVariableName(t *testing.T) {
	assert.Equal(t, "fullServiceRestaurants", VariableName("Full-Service Restaurants"))
	assert.Equal(t, "janitorialServices", VariableName("Janitorial Services"))
	assert.Equal(t, "", VariableName("()"))
}
