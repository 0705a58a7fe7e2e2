package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load reads the schema document at path and parses it into a Schema.
//
// The document format is selected by file extension: TOML is the default
// and YAML is accepted as an alternative. Either way the document must be a
// two-level subject.variable table as described in the package doc.
func Load(path string) (*Schema, error) {
	k := koanf.New(".")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading schema document %s: %w", path, err)
	}

	return Parse(k.Raw())
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported schema document format %q (expected .toml or .yaml)", filepath.Ext(path))
	}
}
