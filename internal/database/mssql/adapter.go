package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	mssql "github.com/microsoft/go-mssqldb"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

type Adapter struct {
	*common.Compiler
	db *sql.DB
	qb squirrel.StatementBuilderType
}

var typeMap = map[types.ColumnKind]string{
	types.ColumnSerial:     "INT IDENTITY(1,1)",
	types.ColumnPrimaryKey: "INT IDENTITY(1,1) PRIMARY KEY",
	types.ColumnLink:       "INT",
	types.ColumnBoolean:    "BIT",
	types.ColumnInt:        "INT",
	types.ColumnFloat:      "FLOAT",
	types.ColumnChar:       "NCHAR(255)",
	types.ColumnString:     "NVARCHAR(255)",
	types.ColumnTime:       "TIME",
	types.ColumnDate:       "DATE",
	types.ColumnDateTime:   "DATETIME2",
}

func New() *Adapter {
	return &Adapter{
		Compiler: &common.Compiler{
			Dialect: types.DialectMSSQL,
			Quote:   quoteIdent,
			Types:   typeMap,
			Literals: common.Literals{
				True:   "1",
				False:  "0",
				String: quoteLiteral,
			},
		},
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.AtP),
	}
}

func quoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// quoteLiteral emits N'' literals so NCHAR/NVARCHAR defaults keep unicode.
func quoteLiteral(s string) string {
	return "N" + common.QuoteString(s)
}

func (a *Adapter) Connect(ctx context.Context, url string) error {
	connector, err := mssql.NewConnector(url)
	if err != nil {
		return fmt.Errorf("failed to parse SQL Server connection string: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	a.db = db
	return nil
}

func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	if a.db == nil {
		return common.ErrNotConnected
	}
	return a.db.PingContext(ctx)
}

func (a *Adapter) Execute(ctx context.Context, q common.Query) error {
	return common.ExecSQL(ctx, a.db, squirrel.AtP, q)
}

func (a *Adapter) QueryValue(ctx context.Context, q common.Query, dest any) error {
	return common.QueryValueSQL(ctx, a.db, squirrel.AtP, q, dest)
}
