package gen

import (
	"fmt"
	"strconv"
	"strings"

	"confgen/internal/schema"
)

// templateData holds everything the config module template needs.
type templateData struct {
	Package       string
	RuntimeImport string
	Source        string
	Subjects      []subjectData
	Applications  []appData
}

// subjectData describes one generated accessor struct and its load path.
type subjectData struct {
	// Name is the canonical schema name (DATABASE).
	Name string
	// DocName is the lowercase name used in doc comments (database).
	DocName string
	// TypeName is the struct type (DatabaseConfig).
	TypeName string
	// Accessor is the exported singleton accessor (Database).
	Accessor string
	// LoaderVar is the package-level loader variable (databaseLoader).
	LoaderVar string
	// LoadFunc is the unexported constructor (loadDatabaseConfig).
	LoadFunc string

	Fields       []fieldData
	Conditionals []condData
}

// fieldData describes one struct field and how its value is obtained.
type fieldData struct {
	// Name is the Go field name (DatabaseURL).
	Name string
	// Type is the Go type (string, *int64, ...).
	Type string
	// Key is the exact lookup key in the value source (DATABASE_URL).
	Key string
	// Subject is the canonical owning subject, for error reporting.
	Subject string
	// Comment is the schema description, if any.
	Comment string
	// ParseFunc is the runtime coercion function, or "" for strings.
	ParseFunc string
	// Optional fields are pointers and assigned by address.
	Optional bool
	// Mandatory fields fail construction when absent.
	Mandatory bool
	// DefaultExpr is the Go expression for the declared default, or "".
	DefaultExpr string
}

// condData describes one conditional-requirement check, evaluated after all
// fields of the subject are parsed.
type condData struct {
	// Field is the Go field name of the conditionally required variable.
	Field string
	// Key and Subject identify it in error reports.
	Key     string
	Subject string
	// ControlField is the Go field name of the controlling variable.
	ControlField string
	// Expected is the value that makes the variable required.
	Expected string
	// Condition is the predicate in schema notation, for the error message.
	Condition string
}

// appData describes one application: its aggregate container, constructor
// and derived subject set.
type appData struct {
	Name     string
	TypeName string
	Ctor     string
	Subjects []appSubjectData
}

// appSubjectData is one subject exposed by an application container.
type appSubjectData struct {
	// Field is the container field name (Database).
	Field string
	// TypeName is the subject struct type (DatabaseConfig).
	TypeName string
	// Accessor is the cached singleton accessor backing the field.
	Accessor string
}

// buildTemplateData flattens a schema into template bindings. The schema
// slices are already canonically sorted; order is preserved as-is.
func (g *Generator) buildTemplateData(s *schema.Schema) *templateData {
	data := &templateData{
		Package:       g.config.PackageName,
		RuntimeImport: g.config.RuntimeImport,
		Source:        g.config.Source,
	}

	for _, sub := range s.Subjects {
		data.Subjects = append(data.Subjects, buildSubjectData(sub))
	}

	for _, app := range s.Applications {
		data.Applications = append(data.Applications, buildAppData(app))
	}

	return data
}

func buildSubjectData(sub *schema.Subject) subjectData {
	sd := subjectData{
		Name:      sub.Name,
		DocName:   strings.ToLower(sub.Name),
		TypeName:  subjectTypeName(sub.Name),
		Accessor:  exported(sub.Name),
		LoaderVar: unexported(sub.Name) + "Loader",
		LoadFunc:  "load" + subjectTypeName(sub.Name),
	}

	for _, v := range sub.Variables {
		fd := fieldData{
			Name:      exported(v.Name),
			Type:      GoType(v.Kind, v.Optional),
			Key:       v.Name,
			Subject:   v.Subject,
			Comment:   strings.Join(strings.Fields(v.Description), " "),
			ParseFunc: parseFunc(v.Kind),
			Optional:  v.Optional,
			Mandatory: v.Mandatory(),
		}

		if v.Default != nil {
			fd.DefaultExpr = literalExpr(v.Default, v.Optional)
		}

		sd.Fields = append(sd.Fields, fd)

		if v.RequiredWhen != nil {
			sd.Conditionals = append(sd.Conditionals, condData{
				Field:        exported(v.Name),
				Key:          v.Name,
				Subject:      v.Subject,
				ControlField: exported(v.RequiredWhen.Field),
				Expected:     v.RequiredWhen.Value,
				Condition:    v.RequiredWhen.String(),
			})
		}
	}

	return sd
}

func buildAppData(app *schema.Application) appData {
	ad := appData{
		Name:     app.Name,
		TypeName: appTypeName(app.Name),
		Ctor:     "New" + appTypeName(app.Name),
	}

	for _, name := range app.Subjects {
		ad.Subjects = append(ad.Subjects, appSubjectData{
			Field:    exported(name),
			TypeName: subjectTypeName(name),
			Accessor: exported(name),
		})
	}

	return ad
}

// literalExpr renders a default literal as a Go expression. Optional fields
// are pointers, so their defaults go through runtime.Ptr.
func literalExpr(lit *schema.Literal, optional bool) string {
	var expr string

	switch lit.Kind {
	case schema.KindString:
		expr = strconv.Quote(lit.Str)
	case schema.KindInt:
		expr = strconv.FormatInt(lit.Int, 10)
		if optional {
			expr = fmt.Sprintf("int64(%s)", expr)
		}
	case schema.KindFloat:
		expr = strconv.FormatFloat(lit.Float, 'f', -1, 64)
		if optional {
			expr = fmt.Sprintf("float64(%s)", expr)
		}
	case schema.KindBool:
		expr = strconv.FormatBool(lit.Bool)
	}

	if optional {
		return fmt.Sprintf("runtime.Ptr(%s)", expr)
	}

	return expr
}
