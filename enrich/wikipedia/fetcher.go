// Package wikipedia fetches encyclopedia article extracts referenced by
// enrichment facts. The fetcher retrieves an article page, extracts the
// readable main content, and converts it to markdown suitable for
// inclusion alongside generated documentation.
package wikipedia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// maxArticleSize limits the fetched article body.
const maxArticleSize = 8 * 1024 * 1024 // 8MB

// Extract is a fetched article extract.
type Extract struct {
	// Title is the article title.
	Title string

	// Markdown is the readable article content converted to markdown.
	Markdown string

	// Excerpt is the first paragraph of the extract, suitable for use as
	// a one-line summary.
	Excerpt string
}

// Fetcher retrieves and converts article extracts.
type Fetcher struct {
	httpClient *http.Client
	converter  *md.Converter
	logger     *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates an article extract fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		converter: converter,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves the article at rawURL and returns its readable extract.
// The URL is validated before any request is issued.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Extract, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("validate article URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create article request: %w", err)
	}

	f.logger.Debug("Fetching article", "url", rawURL)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch article: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleSize))
	if err != nil {
		return nil, fmt.Errorf("read article body: %w", err)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse article URL: %w", err)
	}

	return f.Convert(body, parsed)
}

// Convert extracts the readable main content from an article page and
// converts it to markdown. Exposed separately so conversion is testable
// without network access.
func (f *Fetcher) Convert(page []byte, pageURL *url.URL) (*Extract, error) {
	article, err := readability.FromReader(bytes.NewReader(page), pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract readable content: %w", err)
	}

	markdown, err := f.converter.ConvertString(article.Content)
	if err != nil {
		return nil, fmt.Errorf("convert article to markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)

	title := article.Title
	if title == "" {
		title = htmlTitle(page)
	}

	return &Extract{
		Title:    title,
		Markdown: markdown,
		Excerpt:  firstParagraph(markdown),
	}, nil
}

// htmlTitle extracts the <title> element from a page.
func htmlTitle(page []byte) string {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title
}

// firstParagraph returns the first non-heading paragraph of markdown text.
func firstParagraph(markdown string) string {
	for _, block := range strings.Split(markdown, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || strings.HasPrefix(block, "#") {
			continue
		}
		return strings.ReplaceAll(block, "\n", " ")
	}
	return ""
}
