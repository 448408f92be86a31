package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/c360studio/servicedocs/enrich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "head": {"vars": ["item", "itemLabel", "itemDescription", "industry", "industryLabel", "inception", "article"]},
  "results": {
    "bindings": [
      {
        "item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q11707"},
        "itemLabel": {"type": "literal", "value": "restaurant"},
        "itemDescription": {"type": "literal", "value": "single establishment that prepares and serves food"},
        "industry": {"type": "uri", "value": "http://www.wikidata.org/entity/Q1778821"},
        "industryLabel": {"type": "literal", "value": "food service"},
        "inception": {"type": "literal", "value": "1765-01-01T00:00:00Z"},
        "article": {"type": "uri", "value": "https://en.wikipedia.org/wiki/Restaurant"}
      }
    ]
  }
}`

const emptyResponse = `{"head": {"vars": []}, "results": {"bindings": []}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithEndpoint(srv.URL), WithHTTPClient(srv.Client()))
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/sparql-results+json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.Contains(t, r.URL.Query().Get("query"), "wd:Q11707")
		_, _ = w.Write([]byte(sampleResponse))
	})

	facts, err := client.Lookup(context.Background(), "Q11707")
	require.NoError(t, err)

	assert.Equal(t, "Q11707", facts.ExternalID)
	assert.Equal(t, "restaurant", facts.Label)
	assert.Equal(t, "single establishment that prepares and serves food", facts.Description)
	require.NotNil(t, facts.IndustryRef)
	assert.Equal(t, "Q1778821", facts.IndustryRef.ID)
	assert.Equal(t, "food service", facts.IndustryRef.Label)
	assert.Nil(t, facts.ProviderRef, "operator was absent from the response")
	assert.Equal(t, "1765-01-01T00:00:00Z", facts.InceptionDate)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Restaurant", facts.ArticleURL)
	assert.Empty(t, facts.ImageURL)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptyResponse))
	})

	_, err := client.Lookup(context.Background(), "Q999999999")
	assert.ErrorIs(t, err, enrich.ErrNotFound)
}

func TestClient_Lookup_InvalidIdentifier(t *testing.T) {
	client := NewClient()

	_, err := client.Lookup(context.Background(), "not-a-qid")
	require.Error(t, err)
	assert.True(t, IsFatal(err))
}

func TestClient_Lookup_LabelMissingEchoesQID(t *testing.T) {
	const resp = `{
	  "head": {"vars": ["item", "itemLabel"]},
	  "results": {"bindings": [{
	    "item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q42"},
	    "itemLabel": {"type": "literal", "value": "Q42"}
	  }]}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(resp))
	})

	facts, err := client.Lookup(context.Background(), "Q42")
	require.NoError(t, err)
	assert.Empty(t, facts.Label, "label service echo is treated as absent")
}

func TestClient_Query_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, transient: true},
		{name: "server error", status: http.StatusServiceUnavailable, transient: true},
		{name: "bad query", status: http.StatusBadRequest, transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Query(context.Background(), "SELECT * WHERE {}")
			require.Error(t, err)
			assert.Equal(t, tt.transient, IsTransient(err))
			assert.Equal(t, !tt.transient, IsFatal(err))
		})
	}
}

func TestEntityID(t *testing.T) {
	assert.Equal(t, "Q11707", EntityID("http://www.wikidata.org/entity/Q11707"))
	assert.Equal(t, "Q42", EntityID("Q42"))
	assert.Equal(t, "", EntityID("https://example.com/no-entity"))
}
