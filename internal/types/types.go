package types

import (
	"fmt"
	"strings"
)

// Dialect names the target database engine a compiler emits SQL for.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectMSSQL    Dialect = "mssql"
)

type ColumnKind int

const (
	ColumnCustom ColumnKind = iota
	ColumnSerial
	ColumnPrimaryKey
	ColumnLink
	ColumnBoolean
	ColumnInt
	ColumnFloat
	ColumnChar
	ColumnString
	ColumnTime
	ColumnDate
	ColumnDateTime
)

var columnKindNames = map[ColumnKind]string{
	ColumnCustom:     "custom",
	ColumnSerial:     "serial",
	ColumnPrimaryKey: "pk",
	ColumnLink:       "link",
	ColumnBoolean:    "boolean",
	ColumnInt:        "int",
	ColumnFloat:      "float",
	ColumnChar:       "char",
	ColumnString:     "string",
	ColumnTime:       "time",
	ColumnDate:       "date",
	ColumnDateTime:   "datetime",
}

func (k ColumnKind) String() string {
	if name, ok := columnKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ColumnKind(%d)", int(k))
}

// ParseColumnKind resolves a schema-file kind name. The custom kind has no
// name since it needs a provider.
func ParseColumnKind(name string) (ColumnKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "primarykey", "primary_key":
		return ColumnPrimaryKey, nil
	case "bool":
		return ColumnBoolean, nil
	case "integer":
		return ColumnInt, nil
	}
	for kind, kindName := range columnKindNames {
		if kindName == name && kind != ColumnCustom {
			return kind, nil
		}
	}
	return ColumnCustom, fmt.Errorf("unknown column kind %q", name)
}

type IndexKind int

const (
	IndexCustom IndexKind = iota
	IndexUnique
	IndexSimple
)

func (k IndexKind) String() string {
	switch k {
	case IndexCustom:
		return "custom"
	case IndexUnique:
		return "unique"
	case IndexSimple:
		return "simple"
	default:
		return fmt.Sprintf("IndexKind(%d)", int(k))
	}
}

func ParseIndexKind(name string) (IndexKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unique":
		return IndexUnique, nil
	case "simple", "index", "":
		return IndexSimple, nil
	default:
		return IndexCustom, fmt.Errorf("unknown index kind %q", name)
	}
}

// ColumnDDLProvider lets a custom column kind describe its own type fragment.
type ColumnDDLProvider interface {
	ColumnDDLByDialect(dialect Dialect) (string, error)
}

// IndexDDLProvider lets a custom index kind render its own DDL.
type IndexDDLProvider interface {
	IndexDDLByDialect(dialect Dialect) (string, error)
}

// Default is the nullable default of a column. The zero value means no
// DEFAULT clause at all.
type Default struct {
	set   bool
	value any
}

func NoDefault() Default { return Default{} }

func NullDefault() Default { return Default{set: true} }

func DefaultOf(value any) Default {
	return Default{set: true, value: value}
}

func (d Default) IsSet() bool  { return d.set }
func (d Default) IsNull() bool { return d.set && d.value == nil }
func (d Default) Value() any   { return d.value }

type Column struct {
	Name    string
	Kind    ColumnKind
	Default Default
	// Custom is consulted for ColumnCustom and any kind outside the closed set.
	Custom ColumnDDLProvider
}

type Index struct {
	Kind  IndexKind
	Table string
	// Columns entries look like `name`, `name DESC` or "`name` asc".
	Columns []string
	Name    string
	// Schema optionally qualifies the index name on DROP INDEX.
	Schema string
	Custom IndexDDLProvider
}

// ResolveName stores derived as the index name unless a name is already set,
// and returns the name in effect.
func (i *Index) ResolveName(derived string) string {
	if i.Name == "" {
		i.Name = derived
	}
	return i.Name
}

type Table struct {
	Name    string
	Columns []Column
	Indexes []*Index
}
