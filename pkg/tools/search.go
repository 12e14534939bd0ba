package tools

import (
	"context"
	"fmt"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/quaylabs/multisearch-mcp/pkg/engine"
)

// NewCategoryTools builds the five per-category search tools from the
// category table. They share one handler parametrized by category.
func NewCategoryTools(adapter *engine.Adapter, log zerolog.Logger) []*Tool {
	tools := make([]*Tool, 0, len(CategorySpecs))
	for _, spec := range CategorySpecs {
		tools = append(tools, newCategoryTool(spec, adapter, log))
	}
	return tools
}

func newCategoryTool(spec CategorySpec, adapter *engine.Adapter, log zerolog.Logger) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:         spec.Name,
			Description:  spec.Description,
			Annotations:  &mcp.ToolAnnotations{Title: spec.Description, ReadOnlyHint: true},
			InputSchema:  SearchInputSchema(),
			OutputSchema: SearchOutputSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeSearch(ctx, adapter, log, spec.Name, spec.Category, args)
		},
	}
}

// NewLegacySearchTool builds the multiplexed search tool. It validates the
// category field, strips it, and delegates to the same handler the matching
// per-category tool uses.
func NewLegacySearchTool(adapter *engine.Adapter, log zerolog.Logger) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:         LegacySearchName,
			Description:  legacySearchDescription,
			Annotations:  &mcp.ToolAnnotations{Title: "Search", ReadOnlyHint: true},
			InputSchema:  LegacySearchInputSchema(),
			OutputSchema: SearchOutputSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			category, _ := args["category"].(string)
			if !slices.Contains(Categories, category) {
				return nil, fmt.Errorf("category must be one of %v", Categories)
			}
			stripped := make(map[string]any, len(args))
			for k, v := range args {
				if k != "category" {
					stripped[k] = v
				}
			}
			return executeSearch(ctx, adapter, log, LegacySearchName, category, stripped)
		},
	}
}

// executeSearch validates the query, collects forwarded options and delegates
// to the engine adapter. The response is always {results: <backend list>}.
func executeSearch(ctx context.Context, adapter *engine.Adapter, log zerolog.Logger, toolName, category string, args map[string]any) (*Result, error) {
	query, err := ReadString(args, "query", true)
	if err != nil {
		return nil, err
	}

	opts := forwardedOptions(args)
	results, err := adapter.Search(ctx, category, query, opts)
	if err != nil {
		log.Warn().Err(err).Str("tool", toolName).Str("category", category).Msg("search failed")
		return nil, err
	}

	log.Debug().
		Str("tool", toolName).
		Str("category", category).
		Int("results", len(results)).
		Msg("search completed")
	return JSONResult(map[string]any{"results": results}), nil
}

// forwardedOptions copies the recognized optional fields that are present
// with non-null values. Absent and null fields are omitted, never forwarded.
func forwardedOptions(args map[string]any) engine.Options {
	opts := engine.Options{}
	for _, key := range ForwardedOptionKeys {
		if v, ok := args[key]; ok && v != nil {
			opts[key] = v
		}
	}
	return opts
}
