// Package engine adapts a pluggable search backend to the tool layer.
//
// Backends vary in the calling convention they expose, so the adapter probes
// a fixed order of conventions rather than requiring one interface. A backend
// implements at least one of KeywordsSearcher, QuerySearcher or RawCaller.
package engine

import "context"

// Record is a single opaque search result. The adapter never interprets its
// fields, only the top-level list shape.
type Record = map[string]any

// Options is the forwarded option set for a backend call. Only keys that were
// present and non-null in the incoming request appear here; values keep their
// JSON types.
type Options map[string]any

// String returns a string option, if present.
func (o Options) String(key string) (string, bool) {
	v, ok := o[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns an integer option, if present. JSON numbers arrive as float64.
func (o Options) Int(key string) (int, bool) {
	switch v := o[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Engine is a backend search engine instance produced by a Factory. A usable
// engine implements at least one calling convention; the optional interfaces
// below refine its behavior.
type Engine interface{}

// Factory produces an engine instance per call.
type Factory func() (Engine, error)

// KeywordsSearcher is the preferred calling convention: the query string is
// passed as keywords. Probed first.
type KeywordsSearcher interface {
	Keywords(ctx context.Context, category, keywords string, opts Options) ([]Record, error)
}

// QuerySearcher is the fallback convention for backends that take the query
// under a query-named argument. Probed second.
type QuerySearcher interface {
	Query(ctx context.Context, category, query string, opts Options) ([]Record, error)
}

// RawCaller is the last-resort convention: all arguments in one map with the
// query under "q", and an untyped return whose shape the adapter validates.
type RawCaller interface {
	Call(ctx context.Context, category string, args map[string]any) (any, error)
}

// CategoryLister lets an engine declare which categories it supports. When
// implemented, the adapter rejects unknown categories before calling.
type CategoryLister interface {
	Categories() []string
}

// Releaser marks an engine as scoped: the adapter releases it after each
// call, whether or not the call succeeded.
type Releaser interface {
	Release() error
}
