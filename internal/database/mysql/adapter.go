package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

type Adapter struct {
	*common.Compiler
	db        *sql.DB
	qb        squirrel.StatementBuilderType
	currentDB string
}

var typeMap = map[types.ColumnKind]string{
	types.ColumnSerial:     "SERIAL",
	types.ColumnPrimaryKey: "INT NOT NULL AUTO_INCREMENT PRIMARY KEY",
	types.ColumnLink:       "INT",
	types.ColumnBoolean:    "TINYINT(1)",
	types.ColumnInt:        "INT",
	types.ColumnFloat:      "DOUBLE",
	types.ColumnChar:       "CHAR(255)",
	types.ColumnString:     "VARCHAR(255)",
	types.ColumnTime:       "TIME",
	types.ColumnDate:       "DATE",
	types.ColumnDateTime:   "DATETIME",
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

func New() *Adapter {
	return &Adapter{
		Compiler: &common.Compiler{
			Dialect: types.DialectMySQL,
			Quote:   quoteIdent,
			Types:   typeMap,
			Literals: common.Literals{
				True:   "1",
				False:  "0",
				String: quoteLiteral,
			},
		},
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// quoteLiteral escapes backslashes too, since MySQL treats them as escapes
// inside string literals by default.
func quoteLiteral(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// toDSN converts a mysql:// URL into a go-sql-driver DSN. Anything else is
// returned unchanged.
func toDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	dbAndParams = strings.NewReplacer(
		"ssl-mode=REQUIRED", "tls=skip-verify",
		"ssl-mode=DISABLED", "tls=false",
		"ssl-mode=VERIFY_CA", "tls=true",
		"ssl-mode=VERIFY_IDENTITY", "tls=true",
		"sslmode=require", "tls=skip-verify",
		"sslmode=disable", "tls=false",
		"sslmode=verify-ca", "tls=true",
		"sslmode=verify-full", "tls=true",
	).Replace(dbAndParams)

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Connect(ctx context.Context, url string) error {
	cfg, err := mysql.ParseDSN(toDSN(url))
	if err != nil {
		return fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}
	cfg.ParseTime = true
	m.currentDB = cfg.DBName

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Database() string { return m.currentDB }

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	if m.db == nil {
		return common.ErrNotConnected
	}
	return m.db.PingContext(ctx)
}

func (m *Adapter) Execute(ctx context.Context, q common.Query) error {
	return common.ExecSQL(ctx, m.db, squirrel.Question, q)
}

func (m *Adapter) QueryValue(ctx context.Context, q common.Query, dest any) error {
	return common.QueryValueSQL(ctx, m.db, squirrel.Question, q, dest)
}
