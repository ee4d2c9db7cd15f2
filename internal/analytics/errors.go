package analytics

import "fmt"

// InsufficientDataError signals that a metric's required minimum data points
// are absent. It is never coerced to a zero result.
type InsufficientDataError struct {
	Metric string
	Reason string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: %s", e.Metric, e.Reason)
}

// InvalidConfigurationError signals a non-positive window length or a
// malformed threshold, detected at call time before any computation runs.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Reason)
}
