package wikidata

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// sparqlResponse is the application/sparql-results+json wire format.
type sparqlResponse struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]sparqlValue `json:"bindings"`
	} `json:"results"`
}

// sparqlValue is a single typed cell in a SPARQL result binding.
type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ResultSet is a flattened SPARQL query result: one map per row, keyed by
// variable name, with absent variables simply missing from the row.
type ResultSet struct {
	Vars []string
	Rows []map[string]string
}

// parseResults decodes a SPARQL JSON response into a flat ResultSet.
func parseResults(body []byte) (*ResultSet, error) {
	var resp sparqlResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse sparql response: %w", err)
	}

	rs := &ResultSet{Vars: resp.Head.Vars}
	for _, binding := range resp.Results.Bindings {
		row := make(map[string]string, len(binding))
		for name, val := range binding {
			row[name] = val.Value
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}

// entityIDPattern matches a trailing Wikidata entity identifier in a URI,
// e.g. "http://www.wikidata.org/entity/Q11707" -> "Q11707".
var entityIDPattern = regexp.MustCompile(`(Q\d+)$`)

// EntityID extracts the trailing entity identifier from a Wikidata URI.
// Returns the input unchanged when it is already a bare identifier, and
// an empty string when no identifier can be found.
func EntityID(uri string) string {
	return entityIDPattern.FindString(uri)
}
