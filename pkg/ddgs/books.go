package ddgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

const defaultBookLimit = 20

// books queries the Open Library search API. Records: title, url, authors,
// published.
func (c *Client) books(ctx context.Context, keywords string, opts engine.Options) ([]engine.Record, error) {
	params := url.Values{}
	params.Set("q", keywords)
	limit := defaultBookLimit
	if max, ok := opts.Int("max_results"); ok && max > 0 {
		limit = max
	}
	params.Set("limit", itoa(limit))
	if page, ok := opts.Int("page"); ok && page > 1 {
		params.Set("page", itoa(page))
	}

	body, err := c.get(ctx, c.booksBase+"/search.json?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var payload struct {
		Docs []struct {
			Title            string   `json:"title"`
			Key              string   `json:"key"`
			AuthorName       []string `json:"author_name"`
			FirstPublishYear int      `json:"first_publish_year"`
		} `json:"docs"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse book results: %w", err)
	}
	records := make([]engine.Record, 0, len(payload.Docs))
	for _, doc := range payload.Docs {
		record := engine.Record{
			"title":   doc.Title,
			"url":     c.booksBase + doc.Key,
			"authors": doc.AuthorName,
		}
		if doc.FirstPublishYear > 0 {
			record["published"] = itoa(doc.FirstPublishYear)
		}
		records = append(records, record)
	}
	return capResults(records, opts), nil
}
