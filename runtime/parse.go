package runtime

import (
	"strconv"
	"strings"
)

// Per-type coercion of raw source strings. Each function either returns a
// value of the declared type or a *ValidationError naming the variable;
// there is no silent fallback on unparsable input.

// ParseInt coerces a raw value to int64.
func ParseInt(subject, variable, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, BadValue(subject, variable, raw, "int")
	}

	return n, nil
}

// ParseFloat coerces a raw value to float64.
func ParseFloat(subject, variable, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, BadValue(subject, variable, raw, "float")
	}

	return f, nil
}

// ParseBool coerces a raw value to bool. Accepted spellings are the
// strconv set, case-insensitively ("true", "True", "1", "false", "0", ...).
func ParseBool(subject, variable, raw string) (bool, error) {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return false, BadValue(subject, variable, raw, "bool")
	}

	return b, nil
}

// Satisfied reports whether an already-parsed field value meets a
// conditional-requirement expectation. Comparison is case-insensitive; an
// absent controlling field stringifies to "" and never satisfies.
func Satisfied(actual, expected string) bool {
	if actual == "" {
		return false
	}

	return strings.EqualFold(actual, expected)
}

// Stringify renders a parsed field value for condition evaluation. It is
// total over the eight representations the type mapper can emit: the four
// value types and their pointer forms, where nil means absent.
func Stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case *string:
		if x == nil {
			return ""
		}

		return *x
	case *bool:
		if x == nil {
			return ""
		}

		return strconv.FormatBool(*x)
	case *int64:
		if x == nil {
			return ""
		}

		return strconv.FormatInt(*x, 10)
	case *float64:
		if x == nil {
			return ""
		}

		return strconv.FormatFloat(*x, 'f', -1, 64)
	default:
		return ""
	}
}
