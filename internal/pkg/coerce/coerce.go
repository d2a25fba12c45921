// Package coerce parses scalar values read back from the cache store.
// Redis returns every hash field and counter as text, and writers on other
// stacks may have stored "7", "7.0" or "7.5" where an integer is expected,
// so parsing is tolerant of both representations and fails closed.
package coerce

import (
	"strconv"
	"strings"
)

// Int64 parses s as an integer, accepting a float representation and
// truncating it toward zero.
func Int64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// Float64 parses s as a floating point number.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
