package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

// DefaultFetchTimeoutSecs is the fetch timeout when the caller gives none.
const DefaultFetchTimeoutSecs = 20

const bodyEncodingBase64 = "base64"

// NewFetchTool builds the fetch_content tool.
func NewFetchTool(log zerolog.Logger) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:         FetchContentName,
			Description:  fetchContentDescription,
			Annotations:  &mcp.ToolAnnotations{Title: "Fetch Content", ReadOnlyHint: true},
			InputSchema:  FetchInputSchema(),
			OutputSchema: FetchOutputSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeFetch(ctx, log, args)
		},
	}
}

func executeFetch(ctx context.Context, log zerolog.Logger, args map[string]any) (*Result, error) {
	rawURL, err := ReadString(args, "url", true)
	if err != nil {
		return nil, err
	}
	timeoutSecs, err := ReadPositiveNumber(args, "timeout", DefaultFetchTimeoutSecs)
	if err != nil {
		return nil, err
	}
	headers, err := ReadStringMap(args, "headers")
	if err != nil {
		return nil, err
	}
	maxBytes, limited, err := ReadPositiveInt(args, "max_bytes")
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: time.Duration(timeoutSecs * float64(time.Second))}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// Error responses (4xx/5xx) are successful fetches: the caller gets the
	// real status and body. Only transport failures become tool errors.
	resp, err := client.Do(req)
	if err != nil {
		return nil, engine.Classify(err)
	}
	defer resp.Body.Close()

	var body []byte
	truncated := false
	if limited {
		body, err = io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
		truncated = err == nil && len(body) >= maxBytes
	} else {
		body, err = io.ReadAll(resp.Body)
	}
	if err != nil {
		return nil, engine.Classify(err)
	}

	contentType := resp.Header.Get("Content-Type")
	encoded, encodingTag := encodeBody(body, contentType)

	payload := map[string]any{
		"url":           rawURL,
		"status":        resp.StatusCode,
		"headers":       lowercaseHeaders(resp.Header),
		"content_type":  contentTypeOrNil(contentType),
		"body":          encoded,
		"body_encoding": encodingTag,
		"truncated":     truncated,
	}

	log.Debug().
		Str("tool", FetchContentName).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Bool("truncated", truncated).
		Msg("fetch completed")
	return JSONResult(payload), nil
}

// encodeBody picks the body representation: textual content is decoded with
// its declared charset, anything else (or an undecodable body) is base64.
func encodeBody(body []byte, contentType string) (string, string) {
	if !isTextualContentType(contentType) {
		return base64.StdEncoding.EncodeToString(body), bodyEncodingBase64
	}
	charset := charsetOf(contentType)
	if decoded, ok := decodeCharset(body, charset); ok {
		return decoded, charset
	}
	return base64.StdEncoding.EncodeToString(body), bodyEncodingBase64
}

// isTextualContentType reports whether the content type is treated as text:
// a "text/" prefix, or a json/xml/javascript media type.
func isTextualContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	for _, marker := range []string{"json", "xml", "javascript"} {
		if strings.Contains(mediaType, marker) {
			return true
		}
	}
	return false
}

// charsetOf extracts the charset parameter, defaulting to utf-8.
func charsetOf(contentType string) string {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if cs := strings.ToLower(strings.TrimSpace(params["charset"])); cs != "" {
			return cs
		}
	}
	return "utf-8"
}

func decodeCharset(body []byte, charset string) (string, bool) {
	switch charset {
	case "utf-8", "utf8", "us-ascii", "ascii":
		// The html index maps these to a no-op decoder, so validate directly.
		if utf8.Valid(body) {
			return string(body), true
		}
		return "", false
	}
	enc, err := htmlindex.Get(charset)
	if err != nil || enc == nil {
		return "", false
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// lowercaseHeaders flattens response headers into a lower-cased string map.
func lowercaseHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for k, values := range header {
		out[strings.ToLower(k)] = strings.Join(values, ", ")
	}
	return out
}

func contentTypeOrNil(contentType string) any {
	if contentType == "" {
		return nil
	}
	return contentType
}
