package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

type Adapter struct {
	*common.Compiler
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var typeMap = map[types.ColumnKind]string{
	types.ColumnSerial:     "INTEGER AUTOINCREMENT",
	types.ColumnPrimaryKey: "INTEGER PRIMARY KEY AUTOINCREMENT",
	types.ColumnLink:       "INTEGER",
	types.ColumnBoolean:    "INTEGER",
	types.ColumnInt:        "INTEGER",
	types.ColumnFloat:      "REAL",
	types.ColumnChar:       "TEXT",
	types.ColumnString:     "TEXT",
	types.ColumnTime:       "TEXT",
	types.ColumnDate:       "TEXT",
	types.ColumnDateTime:   "TEXT",
}

func New() *Adapter {
	return &Adapter{
		Compiler: &common.Compiler{
			Dialect:  types.DialectSQLite,
			Quote:    quoteIdent,
			Types:    typeMap,
			Literals: common.NumericBoolean,
		},
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	if s.db == nil {
		return common.ErrNotConnected
	}
	return s.db.PingContext(ctx)
}

func (s *Adapter) Execute(ctx context.Context, q common.Query) error {
	return common.ExecSQL(ctx, s.db, squirrel.Question, q)
}

func (s *Adapter) QueryValue(ctx context.Context, q common.Query, dest any) error {
	return common.QueryValueSQL(ctx, s.db, squirrel.Question, q, dest)
}
