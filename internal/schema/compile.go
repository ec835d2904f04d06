package schema

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pr-of-it/running-dbal/internal/database"
	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

// CompiledTable holds every statement needed to create one table.
type CompiledTable struct {
	Name    string
	Create  common.Query
	Indexes []common.IndexQuery
}

// Queries returns the CREATE TABLE statement followed by its CREATE INDEX
// statements.
func (t CompiledTable) Queries() []common.Query {
	out := make([]common.Query, 0, len(t.Indexes)+1)
	out = append(out, t.Create)
	for _, idx := range t.Indexes {
		out = append(out, idx.Query)
	}
	return out
}

// CompileAll compiles tables concurrently and returns results in input order.
// The given tables are not modified; derived index names are reported in
// CompiledTable.Indexes.
func CompileAll(dialect database.Dialect, tables []types.Table) ([]CompiledTable, error) {
	out := make([]CompiledTable, len(tables))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range tables {
		i := i
		g.Go(func() error {
			compiled, err := Compile(dialect, tables[i])
			if err != nil {
				return err
			}
			out[i] = compiled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func Compile(dialect database.Dialect, table types.Table) (CompiledTable, error) {
	create, err := dialect.CreateTableQuery(table.Name, table.Columns, table.Indexes)
	if err != nil {
		return CompiledTable{}, err
	}

	compiled := CompiledTable{Name: table.Name, Create: create}
	for _, idx := range table.Indexes {
		if idx == nil {
			return CompiledTable{}, fmt.Errorf("%w: nil index on table %s", common.ErrInvalidSchema, table.Name)
		}
		q, err := dialect.AddIndexQuery(table.Name, *idx)
		if err != nil {
			return CompiledTable{}, err
		}
		compiled.Indexes = append(compiled.Indexes, q)
	}
	return compiled, nil
}
