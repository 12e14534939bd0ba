package ddgs

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

const textPageSize = 20

// text scrapes the HTML results endpoint. Each record has title, href, body.
func (c *Client) text(ctx context.Context, keywords string, opts engine.Options) ([]engine.Record, error) {
	params := url.Values{}
	params.Set("q", keywords)
	if region := regionParam(opts); region != "" {
		params.Set("kl", region)
	}
	params.Set("kp", safesearchParam(opts))
	if offset := pageOffset(opts, textPageSize); offset > 0 {
		params.Set("s", itoa(offset))
	}

	body, err := c.get(ctx, c.htmlBase+"/html/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse text results: %w", err)
	}

	records := []engine.Record{}
	doc.Find("div.result, div.web-result").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a.result__a").First()
		href := resolveRedirect(link.AttrOr("href", ""))
		title := strings.TrimSpace(link.Text())
		if title == "" || href == "" {
			return
		}
		records = append(records, engine.Record{
			"title": title,
			"href":  href,
			"body":  strings.TrimSpace(sel.Find(".result__snippet").Text()),
		})
	})
	return capResults(records, opts), nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// destination URL. Unrecognized hrefs pass through untouched.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasPrefix(parsed.Path, "/l/") {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
