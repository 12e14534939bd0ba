package tools

// Tool names and descriptions shared by the registry and the MCP binding.

const (
	TextSearchName   = "text_search"
	ImageSearchName  = "image_search"
	NewsSearchName   = "news_search"
	VideoSearchName  = "video_search"
	BookSearchName   = "book_search"
	FetchContentName = "fetch_content"
	LegacySearchName = "search"
)

// Categories lists the supported search categories, in the order the legacy
// multiplexed tool's enum declares them.
var Categories = []string{"text", "images", "news", "videos", "books"}

// CategorySpec describes one per-category search tool. The five tools differ
// only in these fields.
type CategorySpec struct {
	Category    string
	Name        string
	Description string
}

// CategorySpecs drives construction of the per-category tools.
var CategorySpecs = []CategorySpec{
	{Category: "text", Name: TextSearchName, Description: "Search the web for text results (title, link, snippet)."},
	{Category: "images", Name: ImageSearchName, Description: "Search the web for images (title, image URL, thumbnail, source page)."},
	{Category: "news", Name: NewsSearchName, Description: "Search recent news articles (title, link, excerpt, source, date)."},
	{Category: "videos", Name: VideoSearchName, Description: "Search for videos (title, link, description, publisher)."},
	{Category: "books", Name: BookSearchName, Description: "Search for books (title, link, authors, publication year)."},
}

const (
	fetchContentDescription = "Fetch a URL over HTTP(S) and return its status, headers and body, optionally truncated."
	legacySearchDescription = "Unified multi-category search across text/images/news/videos/books."
)

// ForwardedOptionKeys are the optional request fields passed through to the
// backend verbatim when present and non-null.
var ForwardedOptionKeys = []string{"backend", "region", "safesearch", "page", "max_results"}

func searchOptionProperties() map[string]any {
	return map[string]any{
		"backend":    map[string]any{"type": "string"},
		"region":     map[string]any{"type": "string"},
		"safesearch": map[string]any{"type": "string"},
		"page":       map[string]any{"type": "integer", "default": 1},
		"max_results": map[string]any{
			"type": []string{"integer", "null"},
		},
	}
}

// SearchInputSchema returns the JSON schema shared by the five category tools.
func SearchInputSchema() map[string]any {
	properties := searchOptionProperties()
	properties["query"] = map[string]any{"type": "string"}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
		"required":             []string{"query"},
	}
}

// LegacySearchInputSchema returns the schema for the multiplexed search tool.
func LegacySearchInputSchema() map[string]any {
	properties := searchOptionProperties()
	properties["query"] = map[string]any{"type": "string"}
	properties["category"] = map[string]any{"type": "string", "enum": Categories}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
		"required":             []string{"query", "category"},
	}
}

// SearchOutputSchema returns the {results: array<object>} schema all search
// tools share.
func SearchOutputSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"results": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object"},
			},
		},
		"required": []string{"results"},
	}
}

// FetchInputSchema returns the fetch_content input schema.
func FetchInputSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"url":     map[string]any{"type": "string"},
			"timeout": map[string]any{"type": "number", "default": 20},
			"headers": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
			"max_bytes": map[string]any{"type": "integer"},
		},
		"required": []string{"url"},
	}
}

// FetchOutputSchema returns the fetch_content output schema.
func FetchOutputSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"url":           map[string]any{"type": "string"},
			"status":        map[string]any{"type": "integer"},
			"headers":       map[string]any{"type": "object"},
			"content_type":  map[string]any{"type": []string{"string", "null"}},
			"body":          map[string]any{"type": "string"},
			"body_encoding": map[string]any{"type": "string"},
			"truncated":     map[string]any{"type": "boolean"},
		},
		"required": []string{"url", "status", "headers", "body", "body_encoding", "truncated"},
	}
}
