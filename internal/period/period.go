package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format returns a month key like "2025-01". Keys are zero-padded; plain
// string ordering matches chronological ordering.
func Format(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Of returns the month key for a date.
func Of(t time.Time) string {
	return Format(t.Year(), int(t.Month()))
}

// Parse parses "2025-01" into year and month.
func Parse(key string) (year, month int, err error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key format: %q", key)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in month key %q: %w", key, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in month key %q: %w", key, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range in month key %q", key)
	}

	return year, month, nil
}

// Start returns the first instant of the key's month in UTC.
func Start(key string) (time.Time, error) {
	year, month, err := Parse(key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// Next returns the key of the following month.
func Next(key string) (string, error) {
	year, month, err := Parse(key)
	if err != nil {
		return "", err
	}
	if month == 12 {
		return Format(year+1, 1), nil
	}
	return Format(year, month+1), nil
}
