package tools

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

// fakeEngine records keywords-convention calls for the search tool tests.
type fakeEngine struct {
	calls        int
	lastCategory string
	lastQuery    string
	lastOpts     engine.Options
	results      []engine.Record
	err          error
}

func (e *fakeEngine) Keywords(_ context.Context, category, keywords string, opts engine.Options) ([]engine.Record, error) {
	e.calls++
	e.lastCategory = category
	e.lastQuery = keywords
	e.lastOpts = opts
	return e.results, e.err
}

func fakeAdapter(eng *fakeEngine) *engine.Adapter {
	return engine.NewAdapter(func() (engine.Engine, error) { return eng, nil }, zerolog.Nop())
}

func toolByName(t *testing.T, tools []*Tool, name string) *Tool {
	t.Helper()
	for _, tool := range tools {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %q not built", name)
	return nil
}

func TestCategoryToolsCoverAllCategories(t *testing.T) {
	eng := &fakeEngine{}
	tools := NewCategoryTools(fakeAdapter(eng), zerolog.Nop())
	if len(tools) != len(Categories) {
		t.Fatalf("built %d tools, want %d", len(tools), len(Categories))
	}
	wantNames := map[string]string{
		TextSearchName:  "text",
		ImageSearchName: "images",
		NewsSearchName:  "news",
		VideoSearchName: "videos",
		BookSearchName:  "books",
	}
	for name, category := range wantNames {
		tool := toolByName(t, tools, name)
		eng.calls = 0
		if _, err := tool.Execute(context.Background(), map[string]any{"query": "q"}); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if eng.lastCategory != category {
			t.Fatalf("%s searched category %q, want %q", name, eng.lastCategory, category)
		}
		if eng.calls != 1 {
			t.Fatalf("%s: engine called %d times", name, eng.calls)
		}
	}
}

func TestSearchQueryValidation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{name: "missing query", args: map[string]any{}, want: "required"},
		{name: "null query", args: map[string]any{"query": nil}, want: "required"},
		{name: "empty query", args: map[string]any{"query": ""}, want: "non-empty"},
		{name: "blank query", args: map[string]any{"query": "   "}, want: "non-empty"},
		{name: "non-string query", args: map[string]any{"query": 42}, want: "must be a string"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eng := &fakeEngine{}
			tool := toolByName(t, NewCategoryTools(fakeAdapter(eng), zerolog.Nop()), TextSearchName)
			_, err := tool.Execute(context.Background(), tc.args)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("got error %v, want mention of %q", err, tc.want)
			}
			if eng.calls != 0 {
				t.Fatalf("engine called %d times on invalid input", eng.calls)
			}
		})
	}
}

func TestSearchForwardsOnlyPresentOptions(t *testing.T) {
	eng := &fakeEngine{}
	tool := toolByName(t, NewCategoryTools(fakeAdapter(eng), zerolog.Nop()), NewsSearchName)

	args := map[string]any{
		"query":       "golang",
		"region":      "us-en",
		"safesearch":  "off",
		"page":        float64(2),
		"max_results": nil, // explicit null must be dropped
	}
	if _, err := tool.Execute(context.Background(), args); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := engine.Options{"region": "us-en", "safesearch": "off", "page": float64(2)}
	if !reflect.DeepEqual(eng.lastOpts, want) {
		t.Fatalf("forwarded options %v, want %v", eng.lastOpts, want)
	}
	if eng.lastQuery != "golang" {
		t.Fatalf("query %q", eng.lastQuery)
	}
}

func TestSearchResultEnvelope(t *testing.T) {
	records := []engine.Record{
		{"title": "first", "href": "https://a.example"},
		{"title": "second", "href": "https://b.example"},
		{"title": "third", "href": "https://c.example"},
	}
	eng := &fakeEngine{results: records}
	tool := toolByName(t, NewCategoryTools(fakeAdapter(eng), zerolog.Nop()), TextSearchName)

	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError() {
		t.Fatalf("unexpected error result: %s", result.Error)
	}
	got, ok := result.Payload["results"].([]engine.Record)
	if !ok {
		t.Fatalf("payload results has type %T", result.Payload["results"])
	}
	if !reflect.DeepEqual(got, records) {
		t.Fatalf("results %v, want backend order preserved", got)
	}
}

func TestSearchEmptyResults(t *testing.T) {
	eng := &fakeEngine{results: nil}
	tool := toolByName(t, NewCategoryTools(fakeAdapter(eng), zerolog.Nop()), BookSearchName)
	result, err := tool.Execute(context.Background(), map[string]any{"query": "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := result.Payload["results"].([]engine.Record)
	if !ok || got == nil || len(got) != 0 {
		t.Fatalf("payload results = %#v, want empty list", result.Payload["results"])
	}
}

func TestLegacySearchMatchesCategoryTool(t *testing.T) {
	records := []engine.Record{{"title": "only"}}

	direct := &fakeEngine{results: records}
	directTool := toolByName(t, NewCategoryTools(fakeAdapter(direct), zerolog.Nop()), TextSearchName)
	directResult, err := directTool.Execute(context.Background(), map[string]any{"query": "golang"})
	if err != nil {
		t.Fatalf("direct tool: %v", err)
	}

	legacy := &fakeEngine{results: records}
	legacyTool := NewLegacySearchTool(fakeAdapter(legacy), zerolog.Nop())
	legacyResult, err := legacyTool.Execute(context.Background(), map[string]any{"query": "golang", "category": "text"})
	if err != nil {
		t.Fatalf("legacy tool: %v", err)
	}

	if !reflect.DeepEqual(directResult.Payload, legacyResult.Payload) {
		t.Fatalf("payloads differ: %v vs %v", directResult.Payload, legacyResult.Payload)
	}
	if legacy.lastCategory != "text" || legacy.lastQuery != "golang" {
		t.Fatalf("legacy searched %q/%q", legacy.lastCategory, legacy.lastQuery)
	}
	if _, forwarded := legacy.lastOpts["category"]; forwarded {
		t.Fatal("category leaked into forwarded options")
	}
}

func TestLegacySearchCategoryValidation(t *testing.T) {
	eng := &fakeEngine{}
	tool := NewLegacySearchTool(fakeAdapter(eng), zerolog.Nop())

	for _, args := range []map[string]any{
		{"query": "q"},
		{"query": "q", "category": "podcasts"},
		{"query": "q", "category": 7},
	} {
		_, err := tool.Execute(context.Background(), args)
		if err == nil || !strings.Contains(err.Error(), "category must be one of") {
			t.Fatalf("args %v: got %v", args, err)
		}
	}
	if eng.calls != 0 {
		t.Fatalf("engine called %d times on invalid category", eng.calls)
	}
}

func TestSearchSchemas(t *testing.T) {
	input := SearchInputSchema()
	if !reflect.DeepEqual(input["required"], []string{"query"}) {
		t.Fatalf("required = %v", input["required"])
	}
	props := input["properties"].(map[string]any)
	maxResults := props["max_results"].(map[string]any)
	if !reflect.DeepEqual(maxResults["type"], []string{"integer", "null"}) {
		t.Fatalf("max_results type = %v", maxResults["type"])
	}
	page := props["page"].(map[string]any)
	if page["default"] != 1 {
		t.Fatalf("page default = %v", page["default"])
	}

	legacy := LegacySearchInputSchema()
	if !reflect.DeepEqual(legacy["required"], []string{"query", "category"}) {
		t.Fatalf("legacy required = %v", legacy["required"])
	}
	category := legacy["properties"].(map[string]any)["category"].(map[string]any)
	if !reflect.DeepEqual(category["enum"], Categories) {
		t.Fatalf("category enum = %v", category["enum"])
	}
}
