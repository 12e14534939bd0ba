package ddgs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

const mediaPageSize = 50

// mediaParams builds the shared parameter set for the vqd JSON endpoints.
func (c *Client) mediaParams(ctx context.Context, keywords string, opts engine.Options) (url.Values, error) {
	token, err := c.vqd(ctx, keywords)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("q", keywords)
	params.Set("o", "json")
	params.Set("vqd", token)
	params.Set("p", safesearchParam(opts))
	if region := regionParam(opts); region != "" {
		params.Set("l", region)
	}
	if offset := pageOffset(opts, mediaPageSize); offset > 0 {
		params.Set("s", itoa(offset))
	}
	return params, nil
}

// images queries the i.js endpoint. Records: title, image, thumbnail, url.
func (c *Client) images(ctx context.Context, keywords string, opts engine.Options) ([]engine.Record, error) {
	params, err := c.mediaParams(ctx, keywords, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, c.jsBase+"/i.js?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var payload struct {
		Results []struct {
			Title     string `json:"title"`
			Image     string `json:"image"`
			Thumbnail string `json:"thumbnail"`
			URL       string `json:"url"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse image results: %w", err)
	}
	records := make([]engine.Record, 0, len(payload.Results))
	for _, item := range payload.Results {
		records = append(records, engine.Record{
			"title":     item.Title,
			"image":     item.Image,
			"thumbnail": item.Thumbnail,
			"url":       item.URL,
		})
	}
	return capResults(records, opts), nil
}

// videos queries the v.js endpoint. Records: title, url, content, source.
func (c *Client) videos(ctx context.Context, keywords string, opts engine.Options) ([]engine.Record, error) {
	params, err := c.mediaParams(ctx, keywords, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, c.jsBase+"/v.js?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var payload struct {
		Results []struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			Description string `json:"description"`
			Publisher   string `json:"publisher"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse video results: %w", err)
	}
	records := make([]engine.Record, 0, len(payload.Results))
	for _, item := range payload.Results {
		records = append(records, engine.Record{
			"title":   item.Title,
			"url":     item.Content,
			"content": item.Description,
			"source":  item.Publisher,
		})
	}
	return capResults(records, opts), nil
}

// news queries the news.js endpoint. Records: title, href, body, source, date.
func (c *Client) news(ctx context.Context, keywords string, opts engine.Options) ([]engine.Record, error) {
	params, err := c.mediaParams(ctx, keywords, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, c.jsBase+"/news.js?"+params.Encode())
	if err != nil {
		return nil, err
	}
	var payload struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Excerpt string `json:"excerpt"`
			Source  string `json:"source"`
			Date    int64  `json:"date"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse news results: %w", err)
	}
	records := make([]engine.Record, 0, len(payload.Results))
	for _, item := range payload.Results {
		record := engine.Record{
			"title":  item.Title,
			"href":   item.URL,
			"body":   item.Excerpt,
			"source": item.Source,
		}
		if item.Date > 0 {
			record["date"] = time.Unix(item.Date, 0).UTC().Format("2006-01-02")
		}
		records = append(records, record)
	}
	return capResults(records, opts), nil
}
