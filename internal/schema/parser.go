package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"confgen/internal/common"
	"confgen/internal/condition"
	"confgen/internal/diagnostic"
	"confgen/internal/suggest"
)

// SchemaError reports every problem found in a schema document. Parsing
// checks the whole document and accumulates findings instead of stopping at
// the first one.
type SchemaError struct {
	Diagnostics diagnostic.Diagnostics
}

func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Diagnostics.Errors)+1)
	lines = append(lines, fmt.Sprintf("schema has %d error(s):", len(e.Diagnostics.Errors)))

	for _, d := range e.Diagnostics.Errors {
		lines = append(lines, "  - "+d.String())
	}

	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual findings as a combined error so callers can
// match specific failure classes with errors.As.
func (e *SchemaError) Unwrap() error {
	return e.Diagnostics.Error()
}

// Leaf keys recognized in a variable declaration.
const (
	keyType         = "type"
	keyDefault      = "default"
	keyDescription  = "description"
	keyApplications = "applications"
	keyRequiredWhen = "required_when"
)

// Parse validates a raw schema document and builds the normalized model.
//
// The document is a two-level table: top-level keys are subjects, second
// level keys are variables, and each leaf holds the declaration fields.
// On any structural problem Parse returns a *SchemaError carrying all
// findings; the returned schema is nil in that case.
func Parse(doc map[string]any) (*Schema, error) {
	p := &parser{}

	for _, rawSubject := range common.SortedKeys(doc) {
		p.parseSubject(rawSubject, doc[rawSubject])
	}

	p.checkConditions()

	if p.diags.HasErrors() {
		return nil, &SchemaError{Diagnostics: p.diags}
	}

	s := build(p.variables)
	s.Warnings = p.diags.Warnings

	return s, nil
}

type parser struct {
	diags     diagnostic.Diagnostics
	variables []*Variable

	// seen tracks declared (subject, name) pairs after normalization.
	// Redeclaring a pair is a hard parse error, never a silent overwrite.
	seen map[[2]string]struct{}
}

func (p *parser) parseSubject(rawName string, value any) {
	subject := Normalize(rawName)

	table, ok := value.(map[string]any)
	if !ok {
		p.diags.AddError("subject_not_table",
			fmt.Sprintf("subject %q must be a table of variables, got %T", rawName, value),
			subject, "")

		return
	}

	for _, rawVar := range common.SortedKeys(table) {
		p.parseVariable(subject, rawVar, table[rawVar])
	}
}

func (p *parser) parseVariable(subject, rawName string, value any) {
	name := Normalize(rawName)

	leaf, ok := value.(map[string]any)
	if !ok {
		p.diags.AddError("variable_not_table",
			fmt.Sprintf("variable %q must be a table of declaration fields, got %T", rawName, value),
			subject, name)

		return
	}

	if p.seen == nil {
		p.seen = map[[2]string]struct{}{}
	}

	key := [2]string{subject, name}
	if _, dup := p.seen[key]; dup {
		p.diags.AddError("duplicate_variable",
			fmt.Sprintf("variable %s.%s is declared more than once", subject, name),
			subject, name)

		return
	}

	p.seen[key] = struct{}{}

	v := &Variable{Name: name, Subject: subject}

	// type is the only required field.
	typeExpr, ok := p.parseType(leaf, subject, name)
	if ok {
		v.Kind = typeExpr.Kind
		v.Optional = typeExpr.Optional
	}

	v.Description, _ = leaf[keyDescription].(string)
	v.Applications = p.parseApplications(leaf, subject, name)

	if raw, present := leaf[keyDefault]; present && ok {
		lit, err := coerceLiteral(raw, v.Kind)
		if err != nil {
			p.diags.AddError("bad_default",
				fmt.Sprintf("default %v is not a valid %s: %v", raw, typeName(v.Kind), err),
				subject, name)
		} else {
			v.Default = lit
		}
	}

	p.parseRequiredWhen(leaf, v, ok)

	if len(v.Applications) == 0 {
		p.diags.AddWarning("unreferenced_variable",
			"variable is not listed by any application and will never be validated at startup",
			subject, name)
	}

	p.variables = append(p.variables, v)
}

func (p *parser) parseType(leaf map[string]any, subject, name string) (TypeExpr, bool) {
	raw, present := leaf[keyType]
	if !present {
		p.diags.AddError("missing_type", `declaration has no "type" field`, subject, name)

		return TypeExpr{}, false
	}

	s, ok := raw.(string)
	if !ok {
		p.diags.AddError("missing_type",
			fmt.Sprintf(`"type" must be a string, got %T`, raw), subject, name)

		return TypeExpr{}, false
	}

	expr, ok := ParseTypeExpr(s)
	if !ok {
		msg := fmt.Sprintf("unknown type %q: expected str, int, float or bool (optionally wrapped)", s)
		if hint, found := suggest.Closest(baseToken(s), common.SortedKeys(kindNames)); found {
			msg += fmt.Sprintf(" (did you mean %q?)", hint)
		}

		p.diags.AddError("unknown_type", msg, subject, name)

		return TypeExpr{}, false
	}

	return expr, true
}

func (p *parser) parseApplications(leaf map[string]any, subject, name string) []string {
	raw, present := leaf[keyApplications]
	if !present {
		return nil
	}

	var apps []string

	switch list := raw.(type) {
	case []string:
		apps = append(apps, list...)

	case []any:
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				p.diags.AddError("bad_applications",
					fmt.Sprintf("application names must be strings, got %T", item),
					subject, name)

				return nil
			}

			apps = append(apps, s)
		}

	default:
		p.diags.AddError("bad_applications",
			fmt.Sprintf(`"applications" must be a list of names, got %T`, raw),
			subject, name)

		return nil
	}

	for i, app := range apps {
		apps[i] = strings.TrimSpace(app)
	}

	sort.Strings(apps)

	return apps
}

func (p *parser) parseRequiredWhen(leaf map[string]any, v *Variable, typeKnown bool) {
	raw, present := leaf[keyRequiredWhen]
	if !present {
		return
	}

	s, ok := raw.(string)
	if !ok {
		p.diags.AddError("invalid_condition",
			fmt.Sprintf(`"required_when" must be a string, got %T`, raw),
			v.Subject, v.Name)

		return
	}

	pred, err := condition.Parse(s)
	if err != nil {
		p.diags.AddError("invalid_condition", err.Error(), v.Subject, v.Name)

		return
	}

	if !typeKnown {
		// The declared type did not parse; the optionality check below
		// would only produce a misleading second error.
		return
	}

	if !v.Optional {
		// Absence must be legal unless the predicate holds, so the declared
		// type has to carry the optionality marker.
		p.diags.AddError("condition_on_required",
			"required_when is only allowed on optional variables",
			v.Subject, v.Name)

		return
	}

	v.RequiredWhen = &pred
}

// checkConditions verifies, once all declarations are known, that every
// predicate references another variable inside the same subject.
// Cross-subject conditions are unsupported and rejected here rather than
// surfacing as a silent runtime mismatch.
func (p *parser) checkConditions() {
	bySubject := map[string]map[string]struct{}{}
	namesBySubject := map[string][]string{}

	for _, v := range p.variables {
		if bySubject[v.Subject] == nil {
			bySubject[v.Subject] = map[string]struct{}{}
		}

		bySubject[v.Subject][strings.ToLower(v.Name)] = struct{}{}
		namesBySubject[v.Subject] = append(namesBySubject[v.Subject], v.Name)
	}

	for _, v := range p.variables {
		if v.RequiredWhen == nil {
			continue
		}

		field := v.RequiredWhen.Field

		if field == strings.ToLower(v.Name) {
			p.diags.AddError("condition_self_reference",
				"required_when cannot reference the variable itself",
				v.Subject, v.Name)

			continue
		}

		if _, ok := bySubject[v.Subject][field]; !ok {
			msg := fmt.Sprintf("required_when references %q, which is not a variable of subject %s",
				strings.ToUpper(field), v.Subject)
			if hint, found := suggest.Closest(field, siblingNames(namesBySubject[v.Subject], v.Name)); found {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}

			p.diags.AddError("condition_unknown_field", msg, v.Subject, v.Name)
		}
	}
}

// siblingNames filters the declaring variable out of the suggestion pool:
// pointing a typo back at the variable itself would only restate the
// self-reference error.
func siblingNames(names []string, self string) []string {
	out := make([]string, 0, len(names))

	for _, n := range names {
		if n != self {
			out = append(out, n)
		}
	}

	return out
}

// coerceLiteral converts a raw document value into a typed default literal.
// TOML defaults may arrive natively typed (int, bool) or as strings; both
// forms are accepted, with strings coerced under the same rules the
// generated code applies to runtime values.
func coerceLiteral(raw any, kind Kind) (*Literal, error) {
	lit := &Literal{Kind: kind}

	switch kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %T", raw)
		}

		lit.Str = s

	case KindInt:
		switch n := raw.(type) {
		case int64:
			lit.Int = n
		case int:
			lit.Int = int64(n)
		case string:
			parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as int", n)
			}

			lit.Int = parsed
		default:
			return nil, fmt.Errorf("expected an integer, got %T", raw)
		}

	case KindFloat:
		switch n := raw.(type) {
		case float64:
			lit.Float = n
		case int64:
			lit.Float = float64(n)
		case int:
			lit.Float = float64(n)
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as float", n)
			}

			lit.Float = parsed
		default:
			return nil, fmt.Errorf("expected a float, got %T", raw)
		}

	case KindBool:
		switch b := raw.(type) {
		case bool:
			lit.Bool = b
		case string:
			parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(b)))
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as bool", b)
			}

			lit.Bool = parsed
		default:
			return nil, fmt.Errorf("expected a bool, got %T", raw)
		}

	default:
		return nil, fmt.Errorf("unknown kind %v", kind)
	}

	return lit, nil
}

// typeName renders a kind the way schemas spell it.
func typeName(k Kind) string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}
