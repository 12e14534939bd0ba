package engine

import (
	"context"
	"slices"

	"github.com/rs/zerolog"
)

// Adapter wraps engine construction, calling-convention probing, result
// normalization and failure mapping behind one Search call.
type Adapter struct {
	factory Factory
	log     zerolog.Logger
}

// NewAdapter creates an adapter over the given factory. A nil factory is
// legal; every Search then fails with ErrBackendUnavailable.
func NewAdapter(factory Factory, log zerolog.Logger) *Adapter {
	return &Adapter{factory: factory, log: log}
}

// Search runs one backend call for the given category and query. The returned
// slice is never nil on success. All failures are classified into the package
// error taxonomy.
func (a *Adapter) Search(ctx context.Context, category, query string, opts Options) ([]Record, error) {
	if a.factory == nil {
		return nil, ErrBackendUnavailable
	}
	eng, err := a.factory()
	if err != nil {
		return nil, Classify(err)
	}
	if rel, ok := eng.(Releaser); ok {
		defer func() {
			if rerr := rel.Release(); rerr != nil {
				a.log.Warn().Err(rerr).Str("category", category).Msg("engine release failed")
			}
		}()
	}

	if lister, ok := eng.(CategoryLister); ok {
		if !slices.Contains(lister.Categories(), category) {
			return nil, &UnsupportedCategoryError{Category: category}
		}
	}

	results, err := a.call(ctx, eng, category, query, opts)
	if err != nil {
		return nil, Classify(err)
	}
	if results == nil {
		results = []Record{}
	}
	return results, nil
}

// call probes the calling conventions in their fixed order. A backend
// supporting several conventions is always reached through the earliest one.
func (a *Adapter) call(ctx context.Context, eng Engine, category, query string, opts Options) ([]Record, error) {
	if ks, ok := eng.(KeywordsSearcher); ok {
		return ks.Keywords(ctx, category, query, opts)
	}
	if qs, ok := eng.(QuerySearcher); ok {
		return qs.Query(ctx, category, query, opts)
	}
	if rc, ok := eng.(RawCaller); ok {
		args := make(map[string]any, len(opts)+1)
		args["q"] = query
		for k, v := range opts {
			args[k] = v
		}
		raw, err := rc.Call(ctx, category, args)
		if err != nil {
			return nil, err
		}
		return asRecords(raw)
	}
	// No convention at all: the engine has nothing callable for this category.
	return nil, &UnsupportedCategoryError{Category: category}
}

// asRecords validates the untyped raw-tier return. nil is an empty result;
// anything that is not a list of objects is rejected.
func asRecords(v any) ([]Record, error) {
	switch list := v.(type) {
	case nil:
		return []Record{}, nil
	case []Record:
		return list, nil
	case []any:
		records := make([]Record, 0, len(list))
		for _, item := range list {
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, ErrInvalidResultShape
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, ErrInvalidResultShape
	}
}
