package schema

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the primitive type of a configuration variable.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString
	KindInt
	KindFloat
	KindBool

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// kindNames maps the schema-level type tokens to kinds.
var kindNames = map[string]Kind{
	"str":   KindString,
	"int":   KindInt,
	"float": KindFloat,
	"bool":  KindBool,
}

// TypeExpr is the result of parsing a schema type expression.
type TypeExpr struct {
	Kind     Kind
	Optional bool
}

// ParseTypeExpr parses a schema type string into its base kind and
// optionality. Two optionality notations are accepted and normalize to the
// same result: the "Optional[T]" wrapper and the "T | None" suffix. The
// upstream schema may use either, so both are required.
//
// Returns ok=false if the base type is not one of the four primitives.
func ParseTypeExpr(raw string) (TypeExpr, bool) {
	expr := TypeExpr{}

	s := strings.TrimSpace(raw)
	token := baseToken(s)
	expr.Optional = token != s

	kind, ok := kindNames[token]
	if !ok {
		return TypeExpr{}, false
	}

	expr.Kind = kind

	return expr, true
}

// baseToken strips the optionality notation, leaving the primitive token.
func baseToken(raw string) string {
	s := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(s, "Optional[") && strings.HasSuffix(s, "]"):
		s = s[len("Optional[") : len(s)-1]

	case strings.HasSuffix(s, "| None"):
		s = strings.TrimSuffix(s, "| None")
	}

	return strings.TrimSpace(s)
}
