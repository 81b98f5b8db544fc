package gto

import "fmt"

// ConfigError marks a missing or unusable piece of range/table
// configuration. It is always recovered locally with a documented
// fallback and never escapes the package API.
type ConfigError struct {
	What string
}

func (e *ConfigError) Error() string {
	return "config: " + e.What
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{What: fmt.Sprintf(format, args...)}
}

// InputError marks a contractually invalid decision context or argument.
// It is a caller bug and propagates unchanged.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "input: " + e.Reason
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}
