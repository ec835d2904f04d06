package schema

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pr-of-it/running-dbal/internal/types"
)

type fileSchema struct {
	Tables []fileTable `yaml:"tables"`
}

type fileTable struct {
	Name    string       `yaml:"name"`
	Columns []fileColumn `yaml:"columns"`
	Indexes []fileIndex  `yaml:"indexes"`
}

type fileColumn struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"`
	Default yaml.Node `yaml:"default"`
}

type fileIndex struct {
	Kind    string   `yaml:"kind"`
	Name    string   `yaml:"name"`
	Schema  string   `yaml:"schema"`
	Columns []string `yaml:"columns"`
}

// LoadFile reads a YAML schema file.
func LoadFile(path string) ([]types.Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	tables, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tables, nil
}

// Parse decodes a YAML schema document. Unknown keys and unknown kind names
// are rejected.
func Parse(content []byte) ([]types.Table, error) {
	var doc fileSchema
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	tables := make([]types.Table, 0, len(doc.Tables))
	for _, ft := range doc.Tables {
		table := types.Table{Name: ft.Name}

		for _, fc := range ft.Columns {
			kind, err := types.ParseColumnKind(fc.Kind)
			if err != nil {
				return nil, fmt.Errorf("table %s, column %s: %w", ft.Name, fc.Name, err)
			}
			def, err := decodeDefault(fc.Default)
			if err != nil {
				return nil, fmt.Errorf("table %s, column %s: %w", ft.Name, fc.Name, err)
			}
			table.Columns = append(table.Columns, types.Column{
				Name:    fc.Name,
				Kind:    kind,
				Default: def,
			})
		}

		for _, fi := range ft.Indexes {
			kind, err := types.ParseIndexKind(fi.Kind)
			if err != nil {
				return nil, fmt.Errorf("table %s: %w", ft.Name, err)
			}
			table.Indexes = append(table.Indexes, &types.Index{
				Kind:    kind,
				Table:   ft.Name,
				Columns: fi.Columns,
				Name:    fi.Name,
				Schema:  fi.Schema,
			})
		}

		tables = append(tables, table)
	}
	return tables, nil
}

// decodeDefault keeps the three default states apart: a missing key leaves
// the node zero, an explicit null carries the !!null tag.
func decodeDefault(node yaml.Node) (types.Default, error) {
	if node.Kind == 0 {
		return types.NoDefault(), nil
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return types.NullDefault(), nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return types.Default{}, fmt.Errorf("failed to decode default: %w", err)
	}
	return types.DefaultOf(value), nil
}
