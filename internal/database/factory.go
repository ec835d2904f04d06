package database

import (
	"fmt"

	"github.com/pr-of-it/running-dbal/internal/database/mssql"
	"github.com/pr-of-it/running-dbal/internal/database/mysql"
	"github.com/pr-of-it/running-dbal/internal/database/postgres"
	"github.com/pr-of-it/running-dbal/internal/database/sqlite"
)

var (
	_ DatabaseAdapter = (*sqlite.Adapter)(nil)
	_ DatabaseAdapter = (*postgres.Adapter)(nil)
	_ DatabaseAdapter = (*mysql.Adapter)(nil)
	_ DatabaseAdapter = (*mssql.Adapter)(nil)
)

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "sqlite", "sqlite3":
		return sqlite.New(), nil
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "mssql", "sqlserver":
		return mssql.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
