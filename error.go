package groupz

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel all construction failures unwrap to.
// Malformed configuration fails fast at construction; nothing in this
// package silently produces degenerate state such as zero-duration windows.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a rejected constructor argument. It captures which
// grouper and which field were at fault, enabling precise failure messages
// without string matching.
type ConfigError struct {
	// Grouper identifies the component whose construction failed.
	Grouper string

	// Field names the offending configuration field.
	Field string

	// Value is the rejected value.
	Value any

	// Reason describes the constraint that was violated.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %v)", e.Grouper, e.Field, e.Reason, e.Value)
}

// Unwrap ties every ConfigError to ErrInvalidConfig, so callers can check
// errors.Is(err, ErrInvalidConfig) regardless of which field failed.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func newConfigError(grouper, field string, value any, reason string) *ConfigError {
	return &ConfigError{Grouper: grouper, Field: field, Value: value, Reason: reason}
}
