// Package wikidata implements the enrichment provider against the Wikidata
// SPARQL endpoint. It is a thin read-only query client: one HTTP GET per
// lookup, tabular results mapped into flat enrichment facts, no caching
// and no retries.
package wikidata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/c360studio/servicedocs/enrich"
)

// DefaultEndpoint is the public Wikidata query service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

// defaultUserAgent identifies the client per the endpoint's usage policy.
const defaultUserAgent = "servicedocs/0.1 (https://github.com/c360studio/servicedocs)"

// maxResponseSize limits the response body to prevent memory exhaustion.
const maxResponseSize = 4 * 1024 * 1024 // 4MB

// qidPattern validates a bare Wikidata entity identifier.
var qidPattern = regexp.MustCompile(`^Q\d+$`)

// Client issues SPARQL queries against a Wikidata-compatible endpoint.
// It implements enrich.Provider.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the SPARQL endpoint URL.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Wikidata SPARQL client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Query executes a raw SPARQL query and returns the flattened result set.
func (c *Client) Query(ctx context.Context, query string) (*ResultSet, error) {
	reqURL := c.endpoint + "?query=" + url.QueryEscape(query) + "&format=json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewFatalError(fmt.Errorf("create sparql request: %w", err))
	}
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Sending SPARQL query",
		"endpoint", c.endpoint,
		"query_len", len(query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors are transient
		return nil, NewTransientError(fmt.Errorf("sparql request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, NewTransientError(fmt.Errorf("read sparql response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyHTTPError(resp.StatusCode, body)
	}

	return parseResults(body)
}

// lookupQuery is the per-entity enrichment query. It selects the entity
// label and description plus optional industry, operator, inception date,
// image, and English Wikipedia article.
const lookupQuery = `SELECT ?item ?itemLabel ?itemDescription ?industry ?industryLabel ?operator ?operatorLabel ?inception ?image ?article WHERE {
  BIND(wd:%s AS ?item)
  OPTIONAL { ?item wdt:P452 ?industry . }
  OPTIONAL { ?item wdt:P137 ?operator . }
  OPTIONAL { ?item wdt:P571 ?inception . }
  OPTIONAL { ?item wdt:P18 ?image . }
  OPTIONAL { ?article schema:about ?item ; schema:isPartOf <https://en.wikipedia.org/> . }
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
} LIMIT 1`

// Lookup fetches enrichment facts for a Wikidata entity identifier
// (a bare QID such as "Q11707"). Returns enrich.ErrNotFound when the
// endpoint has no data for the entity.
func (c *Client) Lookup(ctx context.Context, identifier string) (*enrich.Facts, error) {
	if !qidPattern.MatchString(identifier) {
		return nil, NewFatalError(fmt.Errorf("invalid wikidata identifier %q", identifier))
	}

	rs, err := c.Query(ctx, fmt.Sprintf(lookupQuery, identifier))
	if err != nil {
		return nil, err
	}

	if len(rs.Rows) == 0 {
		return nil, fmt.Errorf("entity %s: %w", identifier, enrich.ErrNotFound)
	}

	return factsFromRow(identifier, rs.Rows[0]), nil
}

// factsFromRow maps one SPARQL result row into enrichment facts. Absent
// variables leave the corresponding field unset.
func factsFromRow(identifier string, row map[string]string) *enrich.Facts {
	facts := &enrich.Facts{
		ExternalID:    identifier,
		Description:   row["itemDescription"],
		InceptionDate: row["inception"],
		ImageURL:      row["image"],
		ArticleURL:    row["article"],
	}

	if id := EntityID(row["item"]); id != "" {
		facts.ExternalID = id
	}

	// The label service echoes the QID back when no label exists; treat
	// that as absent.
	if label := row["itemLabel"]; label != "" && label != facts.ExternalID {
		facts.Label = label
	}

	if uri, ok := row["industry"]; ok {
		facts.IndustryRef = &enrich.RelatedEntity{
			ID:    EntityID(uri),
			Label: row["industryLabel"],
		}
	}
	if uri, ok := row["operator"]; ok {
		facts.ProviderRef = &enrich.RelatedEntity{
			ID:    EntityID(uri),
			Label: row["operatorLabel"],
		}
	}

	return facts
}

// classifyHTTPError determines if an endpoint error is transient or fatal.
func classifyHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}

	err := fmt.Errorf("sparql endpoint error (status %d): %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewTransientError(err)
	case statusCode >= 500:
		return NewTransientError(err)
	case statusCode == http.StatusBadRequest:
		// Malformed query
		return NewFatalError(err)
	default:
		return NewFatalError(err)
	}
}
