package schema

import (
	"sort"
	"strconv"
	"strings"

	"confgen/internal/common"
	"confgen/internal/condition"
	"confgen/internal/diagnostic"
)

// Variable is one configuration value declared in the schema.
type Variable struct {
	// Name is the canonical UPPER_SNAKE identifier. It is also the exact
	// key the generated accessor reads from the runtime value source.
	Name string
	// Subject is the canonical name of the subject this variable belongs to.
	Subject string
	// Kind is the primitive type.
	Kind Kind
	// Optional is true if the variable may be absent at runtime.
	Optional bool
	// Default is the literal fallback value, if declared.
	Default *Literal
	// Description documents the variable; it is not semantically load-bearing.
	Description string
	// Applications lists the consumers that need this variable, sorted.
	Applications []string
	// RequiredWhen makes an optional variable mandatory once the predicate
	// holds against the other fields of the same subject.
	RequiredWhen *condition.Predicate
}

// Mandatory reports whether the runtime value must be present: neither
// optional nor covered by a default.
func (v *Variable) Mandatory() bool {
	return !v.Optional && v.Default == nil
}

// Literal is a typed default value.
type Literal struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// String renders the literal the way it would appear in the schema.
func (l *Literal) String() string {
	switch l.Kind {
	case KindString:
		return l.Str
	case KindInt:
		return strconv.FormatInt(l.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(l.Float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(l.Bool)
	default:
		return ""
	}
}

// Subject is a named grouping of variables sharing a logical domain.
// Subjects are derived from the variables, never declared separately; a
// subject with zero variables cannot exist.
type Subject struct {
	Name      string
	Variables []*Variable // sorted by Name
}

// Variable returns the variable with the given canonical name, or nil.
func (s *Subject) Variable(name string) *Variable {
	for _, v := range s.Variables {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// Application is a named consumer. Its subject set is derived: every subject
// containing at least one variable that lists the application.
type Application struct {
	Name     string
	Subjects []string // canonical subject names, sorted
}

// Schema is the fully resolved model of one schema document.
type Schema struct {
	Subjects     []*Subject     // sorted by name
	Applications []*Application // sorted by name
	Variables    []*Variable    // sorted by (subject, name)

	// Warnings are non-fatal findings from parsing, for callers to report.
	Warnings []diagnostic.Diagnostic
}

// Subject returns the subject with the given canonical name, or nil.
func (s *Schema) Subject(name string) *Subject {
	for _, sub := range s.Subjects {
		if sub.Name == name {
			return sub
		}
	}

	return nil
}

// Application returns the application with the given name, or nil.
func (s *Schema) Application(name string) *Application {
	for _, app := range s.Applications {
		if app.Name == name {
			return app
		}
	}

	return nil
}

// Normalize converts a declared subject or variable name to its canonical
// UPPER_SNAKE form.
func Normalize(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "-", "_")

	return strings.ToUpper(s)
}

// build derives subjects and applications from the flat variable list and
// assembles a fully sorted Schema. Sorting here is what makes downstream
// emission deterministic regardless of map iteration order.
func build(variables []*Variable) *Schema {
	sort.Slice(variables, func(i, j int) bool {
		if variables[i].Subject != variables[j].Subject {
			return variables[i].Subject < variables[j].Subject
		}

		return variables[i].Name < variables[j].Name
	})

	subjectsByName := map[string]*Subject{}
	appSubjects := map[string]map[string]struct{}{}

	for _, v := range variables {
		sub, ok := subjectsByName[v.Subject]
		if !ok {
			sub = &Subject{Name: v.Subject}
			subjectsByName[v.Subject] = sub
		}

		sub.Variables = append(sub.Variables, v)

		for _, app := range v.Applications {
			if appSubjects[app] == nil {
				appSubjects[app] = map[string]struct{}{}
			}

			appSubjects[app][v.Subject] = struct{}{}
		}
	}

	schema := &Schema{Variables: variables}

	for _, name := range common.SortedKeys(subjectsByName) {
		schema.Subjects = append(schema.Subjects, subjectsByName[name])
	}

	for _, name := range common.SortedKeys(appSubjects) {
		app := &Application{Name: name, Subjects: common.SortedKeys(appSubjects[name])}
		schema.Applications = append(schema.Applications, app)
	}

	return schema
}
