package ddgs

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
)

// The JSON endpoints require a per-query vqd token embedded in the front page.
var vqdRe = regexp.MustCompile(`vqd=['"]?([\d-]+)['"]?`)

func (c *Client) vqd(ctx context.Context, keywords string) (string, error) {
	params := url.Values{}
	params.Set("q", keywords)
	body, err := c.get(ctx, c.jsBase+"/?"+params.Encode())
	if err != nil {
		return "", err
	}
	match := vqdRe.FindSubmatch(body)
	if match == nil {
		return "", fmt.Errorf("vqd token not found for query")
	}
	return string(match[1]), nil
}
