package tools

import (
	"fmt"
	"strings"
)

// ReadString reads a string parameter. Required strings must be present,
// be strings, and be non-empty after trimming.
func ReadString(params map[string]any, key string, required bool) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	s = strings.TrimSpace(s)
	if required && s == "" {
		return "", fmt.Errorf("parameter %q is required and must be a non-empty string", key)
	}
	return s, nil
}

// ReadPositiveNumber reads a numeric parameter that must be > 0 when present,
// returning the default otherwise.
func ReadPositiveNumber(params map[string]any, key string, defaultVal float64) (float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	n, ok := asNumber(v)
	if !ok || n <= 0 {
		return 0, fmt.Errorf("parameter %q must be a positive number", key)
	}
	return n, nil
}

// ReadPositiveInt reads an integer parameter that must be a positive whole
// number when present. The second return reports presence.
func ReadPositiveInt(params map[string]any, key string) (int, bool, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, numOk := asNumber(v)
	if !numOk || n <= 0 || n != float64(int(n)) {
		return 0, false, fmt.Errorf("parameter %q must be a positive integer", key)
	}
	return int(n), true, nil
}

// ReadStringMap reads an object parameter whose values must coerce to
// strings (strings, numbers and bools qualify).
func ReadStringMap(params map[string]any, key string) (map[string]string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parameter %q must be an object", key)
	}
	result := make(map[string]string, len(m))
	for k, val := range m {
		switch s := val.(type) {
		case string:
			result[k] = s
		case float64, int, int64, bool:
			result[k] = fmt.Sprint(s)
		default:
			return nil, fmt.Errorf("parameter %q values must be strings", key)
		}
	}
	return result, nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}
