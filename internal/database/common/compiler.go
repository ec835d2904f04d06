package common

import (
	"fmt"
	"strings"

	"github.com/pr-of-it/running-dbal/internal/types"
)

// Compiler turns column and index models into DDL for one dialect. Dialect
// adapters embed it and override the statements their engine spells
// differently.
type Compiler struct {
	Dialect types.Dialect
	Quote   func(string) string
	// Types maps every known column kind to its type fragment.
	Types    map[types.ColumnKind]string
	Literals Literals
}

// CompiledIndex is an index DDL fragment together with the index name it
// was rendered with. Name is derived from the columns when the index had
// none; persisting it is left to the caller.
type CompiledIndex struct {
	Name string
	DDL  string
}

func (c *Compiler) Name() types.Dialect { return c.Dialect }

func (c *Compiler) QuoteName(name string) string { return c.Quote(name) }

func (c *Compiler) ColumnDDL(col types.Column) (string, error) {
	ddl, known := c.Types[col.Kind]
	if !known || col.Kind == types.ColumnCustom {
		if col.Custom == nil {
			return "", fmt.Errorf("column %q: %w: %s", col.Name, ErrUnknownColumnKind, col.Kind)
		}
		custom, err := col.Custom.ColumnDDLByDialect(c.Dialect)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", col.Name, err)
		}
		return custom, nil
	}

	var (
		def string
		err error
	)
	switch col.Kind {
	case types.ColumnSerial, types.ColumnPrimaryKey:
	case types.ColumnLink:
		// caller supplied defaults are ignored for links
		def = "NULL"
	case types.ColumnBoolean:
		def, err = defaultLiteral(col.Default, c.Literals.Bool)
	case types.ColumnInt:
		def, err = defaultLiteral(col.Default, c.Literals.Int)
	case types.ColumnFloat:
		def, err = defaultLiteral(col.Default, c.Literals.Float)
	default:
		def, err = defaultLiteral(col.Default, func(v any) (string, error) {
			return c.Literals.Text(col.Kind, v)
		})
	}
	if err != nil {
		return "", fmt.Errorf("column %q: %w", col.Name, err)
	}

	if def != "" {
		ddl += " DEFAULT " + def
	}
	return ddl, nil
}

func defaultLiteral(d types.Default, format func(any) (string, error)) (string, error) {
	switch {
	case !d.IsSet():
		return "", nil
	case d.IsNull():
		return "NULL", nil
	default:
		return format(d.Value())
	}
}

// ColumnDefinition renders the quoted column name followed by its DDL.
func (c *Compiler) ColumnDefinition(col types.Column) (string, error) {
	if strings.TrimSpace(col.Name) == "" {
		return "", fmt.Errorf("%w: column with empty name", ErrInvalidSchema)
	}
	ddl, err := c.ColumnDDL(col)
	if err != nil {
		return "", err
	}
	return c.Quote(col.Name) + " " + ddl, nil
}

func (c *Compiler) IndexDDL(idx types.Index) (CompiledIndex, error) {
	var ddl string
	switch idx.Kind {
	case types.IndexUnique:
		ddl = "UNIQUE INDEX "
	case types.IndexSimple:
		ddl = "INDEX "
	default:
		if idx.Custom == nil {
			return CompiledIndex{}, fmt.Errorf("%w: %s", ErrUnknownIndexKind, idx.Kind)
		}
		custom, err := idx.Custom.IndexDDLByDialect(c.Dialect)
		if err != nil {
			return CompiledIndex{}, err
		}
		return CompiledIndex{Name: idx.Name, DDL: custom}, nil
	}

	if strings.TrimSpace(idx.Table) == "" {
		return CompiledIndex{}, fmt.Errorf("%w: index without table", ErrInvalidSchema)
	}
	if len(idx.Columns) == 0 {
		return CompiledIndex{}, fmt.Errorf("%w: index on %s has no columns", ErrInvalidSchema, idx.Table)
	}

	parsed := make([]IndexColumn, 0, len(idx.Columns))
	rendered := make([]string, 0, len(idx.Columns))
	for _, spec := range idx.Columns {
		col, err := ParseIndexColumn(spec)
		if err != nil {
			return CompiledIndex{}, fmt.Errorf("index on %s: %w", idx.Table, err)
		}
		parsed = append(parsed, col)

		entry := c.Quote(col.Name)
		if col.Direction != "" {
			entry += " " + col.Direction
		}
		rendered = append(rendered, entry)
	}

	name := idx.Name
	if name == "" {
		name = DeriveIndexName(parsed)
	}

	ddl += c.Quote(name) + " ON " + c.Quote(idx.Table) + " (" + strings.Join(rendered, ", ") + ")"
	return CompiledIndex{Name: name, DDL: ddl}, nil
}

// CreateTableQuery renders CREATE TABLE with one line per distinct column
// definition. Indexes are only validated here; they are created by separate
// statements.
func (c *Compiler) CreateTableQuery(table string, columns []types.Column, indexes []*types.Index) (Query, error) {
	if strings.TrimSpace(table) == "" {
		return Query{}, fmt.Errorf("%w: table name must not be empty", ErrInvalidSchema)
	}
	if len(columns) == 0 {
		return Query{}, fmt.Errorf("%w: table %s has no columns", ErrInvalidSchema, table)
	}

	seen := make(map[string]struct{}, len(columns))
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		def, err := c.ColumnDefinition(col)
		if err != nil {
			return Query{}, fmt.Errorf("table %s: %w", table, err)
		}
		if _, dup := seen[def]; dup {
			continue
		}
		seen[def] = struct{}{}
		defs = append(defs, def)
	}

	for _, idx := range indexes {
		if idx == nil {
			return Query{}, fmt.Errorf("%w: nil index on table %s", ErrInvalidSchema, table)
		}
		if _, err := c.AddIndexQuery(table, *idx); err != nil {
			return Query{}, err
		}
	}

	sql := "CREATE TABLE " + c.Quote(table) + " (\n" + strings.Join(defs, ",\n") + "\n)"
	return NewQuery(sql, nil), nil
}

func (c *Compiler) RenameTableQuery(oldName, newName string) Query {
	return NewQuery("ALTER TABLE "+c.Quote(oldName)+" RENAME TO "+c.Quote(newName), nil)
}

func (c *Compiler) TruncateTableQuery(table string) Query {
	return NewQuery("TRUNCATE TABLE "+c.Quote(table), nil)
}

func (c *Compiler) DropTableQuery(table string) Query {
	return NewQuery("DROP TABLE "+c.Quote(table), nil)
}

func (c *Compiler) AddColumnQueries(table string, columns []types.Column) ([]Query, error) {
	queries := make([]Query, 0, len(columns))
	for _, col := range columns {
		def, err := c.ColumnDefinition(col)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", table, err)
		}
		queries = append(queries, NewQuery("ALTER TABLE "+c.Quote(table)+" ADD COLUMN "+def, nil))
	}
	return queries, nil
}

func (c *Compiler) DropColumnQueries(table string, columns []string) ([]Query, error) {
	queries := make([]Query, 0, len(columns))
	for _, name := range columns {
		queries = append(queries, NewQuery("ALTER TABLE "+c.Quote(table)+" DROP COLUMN "+c.Quote(name), nil))
	}
	return queries, nil
}

func (c *Compiler) RenameColumnQuery(table, oldName, newName string) (Query, error) {
	return NewQuery("ALTER TABLE "+c.Quote(table)+" RENAME COLUMN "+c.Quote(oldName)+" TO "+c.Quote(newName), nil), nil
}

// ScopeIndex binds idx to table, rejecting an index that names another one.
func ScopeIndex(table string, idx types.Index) (types.Index, error) {
	switch {
	case idx.Table == "":
		idx.Table = table
	case table != "" && idx.Table != table:
		return idx, fmt.Errorf("%w: index %s belongs to %s, not %s", ErrInvalidSchema, idx.Name, idx.Table, table)
	}
	return idx, nil
}

func (c *Compiler) AddIndexQuery(table string, idx types.Index) (IndexQuery, error) {
	idx, err := ScopeIndex(table, idx)
	if err != nil {
		return IndexQuery{}, err
	}
	compiled, err := c.IndexDDL(idx)
	if err != nil {
		return IndexQuery{}, err
	}
	return IndexQuery{Name: compiled.Name, Query: NewQuery("CREATE "+compiled.DDL, nil)}, nil
}

// IndexName returns the index name, deriving it from the columns if unset.
func IndexName(idx types.Index) (string, error) {
	if idx.Name != "" {
		return idx.Name, nil
	}
	if len(idx.Columns) == 0 {
		return "", fmt.Errorf("%w: index without name or columns", ErrInvalidSchema)
	}
	parsed := make([]IndexColumn, 0, len(idx.Columns))
	for _, spec := range idx.Columns {
		col, err := ParseIndexColumn(spec)
		if err != nil {
			return "", err
		}
		parsed = append(parsed, col)
	}
	return DeriveIndexName(parsed), nil
}

func (c *Compiler) DropIndexQuery(table string, idx types.Index) (Query, error) {
	name, err := IndexName(idx)
	if err != nil {
		return Query{}, err
	}
	qualified := c.Quote(name)
	if idx.Schema != "" {
		qualified = c.Quote(idx.Schema) + "." + qualified
	}
	return NewQuery("DROP INDEX "+qualified, nil), nil
}

// IndexQuery is a CREATE INDEX statement and the index name it uses.
type IndexQuery struct {
	Name  string
	Query Query
}
