package database

import (
	"context"
	"fmt"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

// Executor is the part of a Connection the schema operations need.
type Executor interface {
	Execute(ctx context.Context, query common.Query) error
	QueryValue(ctx context.Context, query common.Query, dest any) error
}

// Schema runs compiled DDL through an executor. Every statement of an
// operation is compiled before the first one is sent.
type Schema struct {
	dialect Dialect
	exec    Executor
}

func NewSchema(dialect Dialect, exec Executor) *Schema {
	return &Schema{dialect: dialect, exec: exec}
}

// ForAdapter uses the adapter both as dialect and as executor.
func ForAdapter(adapter DatabaseAdapter) *Schema {
	return NewSchema(adapter, adapter)
}

func (s *Schema) Dialect() Dialect { return s.dialect }

func (s *Schema) run(ctx context.Context, queries ...common.Query) error {
	for _, q := range queries {
		if err := s.exec.Execute(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Exec runs already compiled queries in order.
func (s *Schema) Exec(ctx context.Context, queries ...common.Query) error {
	return s.run(ctx, queries...)
}

func (s *Schema) TableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	if err := s.exec.QueryValue(ctx, s.dialect.ExistsTableQuery(tableName), &exists); err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", tableName, err)
	}
	return exists, nil
}

// CreateTable creates the table and then each of its indexes. Derived index
// names are written back onto the given indexes.
func (s *Schema) CreateTable(ctx context.Context, table types.Table) error {
	create, err := s.dialect.CreateTableQuery(table.Name, table.Columns, table.Indexes)
	if err != nil {
		return err
	}
	indexQueries, err := s.compileIndexes(table.Name, table.Indexes)
	if err != nil {
		return err
	}

	if err := s.run(ctx, create); err != nil {
		return err
	}
	return s.createIndexes(ctx, table.Indexes, indexQueries)
}

func (s *Schema) RenameTable(ctx context.Context, oldName, newName string) error {
	return s.run(ctx, s.dialect.RenameTableQuery(oldName, newName))
}

func (s *Schema) TruncateTable(ctx context.Context, tableName string) error {
	return s.run(ctx, s.dialect.TruncateTableQuery(tableName))
}

func (s *Schema) DropTable(ctx context.Context, tableName string) error {
	return s.run(ctx, s.dialect.DropTableQuery(tableName))
}

func (s *Schema) AddColumn(ctx context.Context, tableName string, columns ...types.Column) error {
	queries, err := s.dialect.AddColumnQueries(tableName, columns)
	if err != nil {
		return err
	}
	return s.run(ctx, queries...)
}

func (s *Schema) DropColumn(ctx context.Context, tableName string, columns ...string) error {
	queries, err := s.dialect.DropColumnQueries(tableName, columns)
	if err != nil {
		return err
	}
	return s.run(ctx, queries...)
}

func (s *Schema) RenameColumn(ctx context.Context, tableName, oldName, newName string) error {
	query, err := s.dialect.RenameColumnQuery(tableName, oldName, newName)
	if err != nil {
		return err
	}
	return s.run(ctx, query)
}

// AddIndex creates each index in order. An index without a name gets the
// derived one assigned as soon as its statement succeeds.
func (s *Schema) AddIndex(ctx context.Context, tableName string, indexes ...*types.Index) error {
	queries, err := s.compileIndexes(tableName, indexes)
	if err != nil {
		return err
	}
	return s.createIndexes(ctx, indexes, queries)
}

func (s *Schema) DropIndex(ctx context.Context, tableName string, indexes ...*types.Index) error {
	queries := make([]common.Query, 0, len(indexes))
	for _, idx := range indexes {
		if idx == nil {
			return fmt.Errorf("%w: nil index on table %s", common.ErrInvalidSchema, tableName)
		}
		q, err := s.dialect.DropIndexQuery(tableName, *idx)
		if err != nil {
			return err
		}
		queries = append(queries, q)
	}
	return s.run(ctx, queries...)
}

func (s *Schema) compileIndexes(tableName string, indexes []*types.Index) ([]common.IndexQuery, error) {
	queries := make([]common.IndexQuery, 0, len(indexes))
	for _, idx := range indexes {
		if idx == nil {
			return nil, fmt.Errorf("%w: nil index on table %s", common.ErrInvalidSchema, tableName)
		}
		q, err := s.dialect.AddIndexQuery(tableName, *idx)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func (s *Schema) createIndexes(ctx context.Context, indexes []*types.Index, queries []common.IndexQuery) error {
	for i, q := range queries {
		if err := s.exec.Execute(ctx, q.Query); err != nil {
			return fmt.Errorf("failed to create index %s: %w", q.Name, err)
		}
		indexes[i].ResolveName(q.Name)
	}
	return nil
}
