package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"
)

// ErrBackendUnavailable is returned when no engine factory is configured.
var ErrBackendUnavailable = errors.New("search backend unavailable: no engine factory configured")

// ErrInvalidResultShape is returned when a raw backend call produces
// something that is not a list of records.
var ErrInvalidResultShape = errors.New("backend returned a non-list result")

// UnsupportedCategoryError indicates the engine has no method for the
// requested category.
type UnsupportedCategoryError struct {
	Category string
}

func (e *UnsupportedCategoryError) Error() string {
	return fmt.Sprintf("unsupported category: %s", e.Category)
}

// TimeoutError wraps a backend failure that was identified as a timeout.
// Its message always starts with "timeout: " and keeps the original text.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string {
	return "timeout: " + e.Cause.Error()
}

func (e *TimeoutError) Unwrap() error { return e.Cause }

// EngineError wraps any other backend failure, preserving the original
// message verbatim.
type EngineError struct {
	Cause error
}

func (e *EngineError) Error() string { return e.Cause.Error() }

func (e *EngineError) Unwrap() error { return e.Cause }

// Classify maps a backend or network failure onto the adapter's error
// taxonomy. Already-classified errors pass through unchanged; timeouts become
// TimeoutError, everything else EngineError.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var te *TimeoutError
	var ee *EngineError
	var uc *UnsupportedCategoryError
	if errors.As(err, &te) || errors.As(err, &ee) || errors.As(err, &uc) {
		return err
	}
	if errors.Is(err, ErrBackendUnavailable) || errors.Is(err, ErrInvalidResultShape) {
		return err
	}
	if isTimeout(err) {
		return &TimeoutError{Cause: err}
	}
	return &EngineError{Cause: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return true
	}
	// Some backends signal timeouts only through the error type name.
	if t := reflect.TypeOf(err); t != nil {
		return strings.Contains(strings.ToLower(t.String()), "timeout")
	}
	return false
}
