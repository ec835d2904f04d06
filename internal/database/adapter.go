package database

import (
	"context"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

// Dialect compiles schema models into statements for one database engine.
// None of its methods touch a connection.
type Dialect interface {
	Name() types.Dialect
	QuoteName(name string) string

	// DDL fragments
	ColumnDDL(column types.Column) (string, error)
	IndexDDL(index types.Index) (common.CompiledIndex, error)

	// Table statements
	ExistsTableQuery(tableName string) common.Query
	CreateTableQuery(tableName string, columns []types.Column, indexes []*types.Index) (common.Query, error)
	RenameTableQuery(oldName, newName string) common.Query
	TruncateTableQuery(tableName string) common.Query
	DropTableQuery(tableName string) common.Query

	// Column statements; dialects without ALTER support return common.ErrUnsupportedOperation
	AddColumnQueries(tableName string, columns []types.Column) ([]common.Query, error)
	DropColumnQueries(tableName string, columns []string) ([]common.Query, error)
	RenameColumnQuery(tableName, oldName, newName string) (common.Query, error)

	// Index statements
	AddIndexQuery(tableName string, index types.Index) (common.IndexQuery, error)
	DropIndexQuery(tableName string, index types.Index) (common.Query, error)
}

// Connection executes compiled statements against a live database.
type Connection interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	Execute(ctx context.Context, query common.Query) error
	QueryValue(ctx context.Context, query common.Query, dest any) error
}

type DatabaseAdapter interface {
	Dialect
	Connection
}
