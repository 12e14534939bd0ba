// Package ddgs implements the DuckDuckGo-family search engine behind the
// engine adapter. Text and news come from the HTML/JSON endpoints, images and
// videos from the vqd-token JSON endpoints, books from Open Library.
package ddgs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

const (
	DefaultTimeoutSecs = 30
	DefaultUserAgent   = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

	CategoryText   = "text"
	CategoryImages = "images"
	CategoryNews   = "news"
	CategoryVideos = "videos"
	CategoryBooks  = "books"
)

// Categories are the search categories this engine supports, in listing order.
var Categories = []string{CategoryText, CategoryImages, CategoryNews, CategoryVideos, CategoryBooks}

// Config controls the engine's HTTP behavior.
type Config struct {
	TimeoutSecs int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
	Proxy       string `yaml:"proxy"`
}

func (c Config) withDefaults() Config {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// Client is a stateless engine instance. It implements the keywords-style
// calling convention plus category listing.
type Client struct {
	http      *http.Client
	userAgent string

	// Endpoint bases, overridable in tests.
	htmlBase  string
	jsBase    string
	booksBase string
}

// NewClient builds an engine client from config.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	transport := http.DefaultTransport
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}
	return &Client{
		http: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
			Transport: transport,
		},
		userAgent: cfg.UserAgent,
		htmlBase:  "https://html.duckduckgo.com",
		jsBase:    "https://duckduckgo.com",
		booksBase: "https://openlibrary.org",
	}, nil
}

// Categories implements engine.CategoryLister.
func (c *Client) Categories() []string {
	return Categories
}

// Keywords implements engine.KeywordsSearcher.
func (c *Client) Keywords(ctx context.Context, category, keywords string, opts engine.Options) ([]engine.Record, error) {
	switch category {
	case CategoryText:
		return c.text(ctx, keywords, opts)
	case CategoryImages:
		return c.images(ctx, keywords, opts)
	case CategoryNews:
		return c.news(ctx, keywords, opts)
	case CategoryVideos:
		return c.videos(ctx, keywords, opts)
	case CategoryBooks:
		return c.books(ctx, keywords, opts)
	default:
		return nil, &engine.UnsupportedCategoryError{Category: category}
	}
}

// get issues a GET and returns the body. Non-2xx statuses are errors here:
// the engine endpoints have nothing useful to say through error pages.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d from %s", resp.StatusCode, req.URL.Host)
	}
	return body, nil
}

// pageOffset converts a 1-based page to a result offset of the given size.
func pageOffset(opts engine.Options, pageSize int) int {
	page, ok := opts.Int("page")
	if !ok || page < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// safesearchParam maps the safesearch option to DuckDuckGo's kp parameter.
func safesearchParam(opts engine.Options) string {
	s, _ := opts.String("safesearch")
	switch s {
	case "on":
		return "1"
	case "off":
		return "-2"
	default:
		return "-1"
	}
}

// regionParam returns the kl region parameter, defaulting to no region.
func regionParam(opts engine.Options) string {
	region, _ := opts.String("region")
	return region
}

// capResults applies max_results when set.
func capResults(records []engine.Record, opts engine.Options) []engine.Record {
	max, ok := opts.Int("max_results")
	if !ok || max < 0 || len(records) <= max {
		return records
	}
	return records[:max]
}

func itoa(n int) string { return strconv.Itoa(n) }
