package sqlite

import (
	"fmt"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

func (s *Adapter) ExistsTableQuery(tableName string) common.Query {
	sql, _ := s.qb.Select("count(*)>0").From("sqlite_master").Where("type=:type AND name=:name").MustSql()
	return common.NewQuery(sql, map[string]any{
		"type": "table",
		"name": tableName,
	})
}

// TruncateTableQuery deletes every row; SQLite has no TRUNCATE.
func (s *Adapter) TruncateTableQuery(tableName string) common.Query {
	return common.NewQuery("DELETE FROM "+s.QuoteName(tableName), nil)
}

// Column changes need a table rebuild in SQLite, which this adapter does not
// attempt.
func (s *Adapter) AddColumnQueries(tableName string, columns []types.Column) ([]common.Query, error) {
	return nil, fmt.Errorf("sqlite: add column to %s: %w", tableName, common.ErrUnsupportedOperation)
}

func (s *Adapter) DropColumnQueries(tableName string, columns []string) ([]common.Query, error) {
	return nil, fmt.Errorf("sqlite: drop column from %s: %w", tableName, common.ErrUnsupportedOperation)
}

func (s *Adapter) RenameColumnQuery(tableName, oldName, newName string) (common.Query, error) {
	return common.Query{}, fmt.Errorf("sqlite: rename column %s.%s: %w", tableName, oldName, common.ErrUnsupportedOperation)
}
