// Package condition parses and evaluates required_when predicates.
//
// A predicate is a single equality test of the form "FIELD=value". The
// field side names another variable in the same subject; the value side is
// compared case-insensitively against the stringified runtime value.
package condition

import (
	"fmt"
	"strings"
)

// Predicate is a parsed required_when expression.
type Predicate struct {
	// Field is the controlling variable, in canonical lower_snake form.
	Field string
	// Value is the expected value, verbatim as written in the schema.
	Value string
}

// SyntaxError reports a malformed required_when expression. It is a
// distinct type so callers can message condition problems specially while
// still folding them into the overall schema error report.
type SyntaxError struct {
	Raw    string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid required_when condition %q: %s", e.Raw, e.Reason)
}

// Parse parses a raw condition string into a Predicate.
//
// The expression must contain exactly one "=" separator with non-empty
// operands on both sides. The field operand is trimmed and case-folded to
// canonical variable-name form; the value operand is trimmed but otherwise
// preserved verbatim.
func Parse(raw string) (Predicate, error) {
	field, value, found := strings.Cut(raw, "=")
	if !found {
		return Predicate{}, &SyntaxError{Raw: raw, Reason: `missing "=" separator`}
	}

	if strings.Contains(value, "=") {
		return Predicate{}, &SyntaxError{Raw: raw, Reason: `more than one "=" separator`}
	}

	field = strings.TrimSpace(field)
	value = strings.TrimSpace(value)

	if field == "" {
		return Predicate{}, &SyntaxError{Raw: raw, Reason: "empty field name"}
	}

	if value == "" {
		return Predicate{}, &SyntaxError{Raw: raw, Reason: "empty expected value"}
	}

	return Predicate{Field: strings.ToLower(field), Value: value}, nil
}

// Evaluate reports whether the predicate holds against a field-value
// mapping of stringified runtime values.
//
// A missing field never satisfies the predicate and is never an error: the
// controlling field may legitimately default to a value that does not meet
// the condition.
func Evaluate(p Predicate, valuesByField map[string]string) bool {
	actual, ok := valuesByField[p.Field]
	if !ok {
		return false
	}

	return strings.EqualFold(actual, p.Value)
}

// String renders the predicate back in schema notation, for error messages
// in generated code.
func (p Predicate) String() string {
	return strings.ToUpper(p.Field) + "=" + p.Value
}
