package variables

import (
	"strconv"
	"strings"
)

// Format returns the canonical string form of a normalized value
func Format(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		if n, err := normalize(v); err == nil {
			return Format(n)
		}
		return ""
	}
}

// ParseScalar interprets command-line input such as the value half of
// key=value. Double-quoted input is always a string.
func ParseScalar(s string) any {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if looksDecimal(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// looksDecimal rejects forms ParseFloat accepts but users rarely mean as
// numbers, such as "inf", "NaN", "1e5" or hex floats.
func looksDecimal(s string) bool {
	digits, dots := 0, 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		case (r == '-' || r == '+') && i == 0:
		default:
			return false
		}
	}
	return digits > 0 && dots == 1
}

// Truthy reports whether a value counts as enabled
func Truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "yes", "y", "on", "1":
			return true
		}
		return false
	default:
		if n, err := normalize(v); err == nil {
			return Truthy(n)
		}
		return false
	}
}
