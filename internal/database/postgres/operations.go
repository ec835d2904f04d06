package postgres

import (
	"github.com/pr-of-it/running-dbal/internal/database/common"
)

func (p *Adapter) ExistsTableQuery(tableName string) common.Query {
	sql, _ := p.qb.Select("count(*)>0").From("information_schema.tables").
		Where("table_schema = current_schema() AND table_type=:type AND table_name=:name").MustSql()
	return common.NewQuery(sql, map[string]any{
		"type": "BASE TABLE",
		"name": tableName,
	})
}
