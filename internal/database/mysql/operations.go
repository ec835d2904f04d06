package mysql

import (
	"fmt"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

func (m *Adapter) ExistsTableQuery(tableName string) common.Query {
	sql, _ := m.qb.Select("count(*)>0").From("information_schema.tables").
		Where("table_schema = DATABASE() AND table_type=:type AND table_name=:name").MustSql()
	return common.NewQuery(sql, map[string]any{
		"type": "BASE TABLE",
		"name": tableName,
	})
}

func (m *Adapter) RenameTableQuery(oldName, newName string) common.Query {
	return common.NewQuery("RENAME TABLE "+m.QuoteName(oldName)+" TO "+m.QuoteName(newName), nil)
}

// DropIndexQuery needs the owning table; MySQL indexes are table scoped.
func (m *Adapter) DropIndexQuery(tableName string, idx types.Index) (common.Query, error) {
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
	table := m.QuoteName(idx.Table)
	if idx.Schema != "" {
		table = m.QuoteName(idx.Schema) + "." + table
	}
	return common.NewQuery("DROP INDEX "+m.QuoteName(name)+" ON "+table, nil), nil
}
