package mssql

import (
	"fmt"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

func (a *Adapter) ExistsTableQuery(tableName string) common.Query {
	sql, _ := a.qb.Select("CASE WHEN count(*) > 0 THEN 1 ELSE 0 END").From("sys.objects").
		Where("type=:type AND name=:name").MustSql()
	return common.NewQuery(sql, map[string]any{
		"type": "U",
		"name": tableName,
	})
}

func (a *Adapter) RenameTableQuery(oldName, newName string) common.Query {
	return common.NewQuery("EXEC sp_rename :old, :new", map[string]any{
		"old": oldName,
		"new": newName,
	})
}

func (a *Adapter) AddColumnQueries(tableName string, columns []types.Column) ([]common.Query, error) {
	queries := make([]common.Query, 0, len(columns))
	for _, col := range columns {
		def, err := a.ColumnDefinition(col)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tableName, err)
		}
		queries = append(queries, common.NewQuery("ALTER TABLE "+a.QuoteName(tableName)+" ADD "+def, nil))
	}
	return queries, nil
}

func (a *Adapter) RenameColumnQuery(tableName, oldName, newName string) (common.Query, error) {
	return common.NewQuery("EXEC sp_rename :old, :new, 'COLUMN'", map[string]any{
		"old": tableName + "." + oldName,
		"new": newName,
	}), nil
}

func (a *Adapter) DropIndexQuery(tableName string, idx types.Index) (common.Query, error) {
	idx, err := common.ScopeIndex(tableName, idx)
	if err != nil {
		return common.Query{}, err
	}
	if idx.Table == "" {
		return common.Query{}, fmt.Errorf("%w: drop index needs a table", common.ErrInvalidSchema)
	}
	name, err := common.IndexName(idx)
	if err != nil {
		return common.Query{}, err
	}
	table := a.QuoteName(idx.Table)
	if idx.Schema != "" {
		table = a.QuoteName(idx.Schema) + "." + table
	}
	return common.NewQuery("DROP INDEX "+a.QuoteName(name)+" ON "+table, nil), nil
}
