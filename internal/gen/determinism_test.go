package gen

import (
	"bytes"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"confgen/internal/schema"
)

// Emission must not depend on Go map iteration order: the document arrives
// as nested maps, so parsing it twice and generating from each result has to
// produce identical bytes.
func TestProperty_EmissionIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genName := gen.RegexMatch(`[a-z][a-z0-9_]{0,12}`)
	genType := gen.OneConstOf("str", "int", "float", "bool", "Optional[str]", "Optional[int]")

	properties.Property("same document emits identical bytes", prop.ForAll(
		func(subjects []string, vars []string, typ string) bool {
			doc := propertyDoc(subjects, vars, typ)

			first, err := emitDoc(doc)
			if err != nil {
				return false
			}

			second, err := emitDoc(doc)
			if err != nil {
				return false
			}

			return bytes.Equal(first, second)
		},
		gen.SliceOfN(3, genName),
		gen.SliceOfN(4, genName),
		genType,
	))

	properties.Property("derived application manifest is sorted", prop.ForAll(
		func(subjects []string, vars []string) bool {
			s, err := schema.Parse(propertyDoc(subjects, vars, "str"))
			if err != nil {
				return false
			}

			names := make([]string, 0, len(s.Applications))
			for _, app := range s.Applications {
				names = append(names, app.Name)
			}

			return sort.StringsAreSorted(names)
		},
		gen.SliceOfN(3, genName),
		gen.SliceOfN(4, genName),
	))

	properties.TestingRun(t)
}

// propertyDoc assembles a valid schema document: every subject carries every
// variable, all typed typ, all referenced by two fixed applications.
func propertyDoc(subjects []string, vars []string, typ string) map[string]any {
	doc := make(map[string]any, len(subjects))

	for _, sub := range subjects {
		table := make(map[string]any, len(vars))
		for _, name := range vars {
			table[name] = map[string]any{
				"type":         typ,
				"applications": []any{"svc-beta", "svc-alpha"},
			}
		}

		doc[sub] = table
	}

	return doc
}

func emitDoc(doc map[string]any) ([]byte, error) {
	s, err := schema.Parse(doc)
	if err != nil {
		return nil, err
	}

	return New(DefaultConfig()).Generate(s)
}
