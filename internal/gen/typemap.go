package gen

import "confgen/internal/schema"

// GoType maps a schema primitive and its optionality to the Go type of the
// generated struct field. Pure and total over the four kinds times the
// optional flag: optional values become pointers so that absence is
// representable. Unknown kinds are rejected by the parser and never reach
// this point.
func GoType(kind schema.Kind, optional bool) string {
	var base string

	switch kind {
	case schema.KindString:
		base = "string"
	case schema.KindInt:
		base = "int64"
	case schema.KindFloat:
		base = "float64"
	case schema.KindBool:
		base = "bool"
	default:
		panic("gen: unknown kind " + kind.String())
	}

	if optional {
		return "*" + base
	}

	return base
}

// parseFunc names the runtime coercion function for a kind, or "" for
// strings, which need no coercion.
func parseFunc(kind schema.Kind) string {
	switch kind {
	case schema.KindInt:
		return "runtime.ParseInt"
	case schema.KindFloat:
		return "runtime.ParseFloat"
	case schema.KindBool:
		return "runtime.ParseBool"
	default:
		return ""
	}
}
