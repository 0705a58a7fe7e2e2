package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"confgen/internal/schema"
)

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the package of the generated file.
	PackageName string
	// RuntimeImport is the import path of the confgen runtime package the
	// generated code leans on.
	RuntimeImport string
	// Source is the schema document path, recorded in the file header.
	Source string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:   "config",
		RuntimeImport: "confgen/runtime",
		Source:        "config.toml",
	}
}

// Generator emits one Go source file implementing typed accessors and
// cross-field validation for a resolved schema.
type Generator struct {
	config Config
}

// New creates a Generator with the given configuration.
func New(config Config) *Generator {
	return &Generator{config: config}
}

// Generate renders the configuration module for the schema and returns the
// gofmt-formatted source. Identical schemas always produce byte-identical
// output: the model arrives canonically sorted and rendering adds no other
// ordering source.
func (g *Generator) Generate(s *schema.Schema) ([]byte, error) {
	data := g.buildTemplateData(s)

	var buf bytes.Buffer
	if err := configTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering config module: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return formatted, nil
}

// Template for the generated configuration module.

var configTemplate = template.Must(template.New("config").Parse(`// Code generated by confgen. DO NOT EDIT.
//
// Source schema: {{.Source}}
// Regenerate with: confgen --config {{.Source}}

package {{.Package}}

import (
	runtime "{{.RuntimeImport}}"
)
{{range .Subjects}}
// {{.TypeName}} holds the {{.DocName}} configuration subject.
type {{.TypeName}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}{{if .Comment}} // {{.Comment}}{{end}}
{{- end}}
}

// {{.LoadFunc}} reads and validates every {{.DocName}} variable from src.
func {{.LoadFunc}}(src runtime.Source) (*{{.TypeName}}, error) {
	cfg := &{{.TypeName}}{}
{{range .Fields}}
{{- if .DefaultExpr}}	cfg.{{.Name}} = {{.DefaultExpr}}
{{end}}	if v, ok := src.Lookup("{{.Key}}"); ok {
{{- if .ParseFunc}}
		parsed, err := {{.ParseFunc}}("{{.Subject}}", "{{.Key}}", v)
		if err != nil {
			return nil, err
		}
		cfg.{{.Name}} = {{if .Optional}}&parsed{{else}}parsed{{end}}
{{- else}}
		cfg.{{.Name}} = {{if .Optional}}&v{{else}}v{{end}}
{{- end}}
	}{{if .Mandatory}} else {
		return nil, runtime.Missing("{{.Subject}}", "{{.Key}}")
	}{{end}}
{{end}}
{{- range .Conditionals}}
	if runtime.Satisfied(runtime.Stringify(cfg.{{.ControlField}}), {{printf "%q" .Expected}}) && cfg.{{.Field}} == nil {
		return nil, runtime.ConditionalMissing("{{.Subject}}", "{{.Key}}", {{printf "%q" .Condition}})
	}
{{end}}
	return cfg, nil
}
{{end}}
// Process-wide cached subjects. Construction is mutex-guarded: concurrent
// first access constructs at most once.
var (
	source runtime.Source = runtime.EnvSource{}
{{range .Subjects}}
	{{.LoaderVar}} = runtime.NewLoader(func() (*{{.TypeName}}, error) { return {{.LoadFunc}}(source) })
{{- end}}
)
{{range .Subjects}}
// {{.Accessor}} returns the {{.DocName}} configuration, constructed and
// validated on first call and cached afterwards.
func {{.Accessor}}() (*{{.TypeName}}, error) {
	return {{.LoaderVar}}.Get()
}
{{end}}
// SetSource replaces the runtime value source and drops every cached
// subject. Intended for tests; call it before any accessor.
func SetSource(src runtime.Source) {
	source = src

	ResetCache()
}

// ResetCache drops every cached subject so the next access reconstructs it.
func ResetCache() {
{{- range .Subjects}}
	{{.LoaderVar}}.Reset()
{{- end}}
}

// Applications lists every application this module was generated for.
var Applications = []string{
{{- range .Applications}}
	{{printf "%q" .Name}},
{{- end}}
}

// ValidateApplication eagerly constructs every subject the named
// application requires, in canonical order, so a deployment with missing
// configuration crashes at startup rather than at first use.
func ValidateApplication(name string) error {
	switch name {
{{- range .Applications}}
	case {{printf "%q" .Name}}:
{{- range .Subjects}}
		if _, err := {{.Accessor}}(); err != nil {
			return err
		}
{{- end}}
		return nil
{{- end}}
	default:
		return &runtime.UnknownApplicationError{Application: name, Known: Applications}
	}
}
{{range .Applications}}
// {{.TypeName}} bundles exactly the subjects {{.Name}} uses, each backed
// by its cached singleton accessor.
type {{.TypeName}} struct {
{{- range .Subjects}}
	{{.Field}} *{{.TypeName}}
{{- end}}
}

// {{.Ctor}} loads (and thereby validates) every subject {{.Name}} needs.
func {{.Ctor}}() (*{{.TypeName}}, error) {
	cfg := &{{.TypeName}}{}

	var err error
{{- range .Subjects}}
	if cfg.{{.Field}}, err = {{.Accessor}}(); err != nil {
		return nil, err
	}
{{- end}}
	return cfg, nil
}
{{end}}`))
