package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

type Adapter struct {
	*common.Compiler
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

var typeMap = map[types.ColumnKind]string{
	types.ColumnSerial:     "SERIAL",
	types.ColumnPrimaryKey: "SERIAL PRIMARY KEY",
	types.ColumnLink:       "INTEGER",
	types.ColumnBoolean:    "BOOLEAN",
	types.ColumnInt:        "INTEGER",
	types.ColumnFloat:      "DOUBLE PRECISION",
	types.ColumnChar:       "CHAR(255)",
	types.ColumnString:     "VARCHAR(255)",
	types.ColumnTime:       "TIME",
	types.ColumnDate:       "DATE",
	types.ColumnDateTime:   "TIMESTAMP",
}

func New() *Adapter {
	return &Adapter{
		Compiler: &common.Compiler{
			Dialect: types.DialectPostgres,
			Quote:   pq.QuoteIdentifier,
			Types:   typeMap,
			Literals: common.Literals{
				True:   "TRUE",
				False:  "FALSE",
				String: quoteLiteral,
			},
		},
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// quoteLiteral drops the leading space pq adds before E'' literals.
func quoteLiteral(s string) string {
	return strings.TrimSpace(pq.QuoteLiteral(s))
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	if p.pool == nil {
		return common.ErrNotConnected
	}
	return p.pool.Ping(ctx)
}

func (p *Adapter) Execute(ctx context.Context, q common.Query) error {
	if p.pool == nil {
		return common.ErrNotConnected
	}
	sql, args, err := q.Bind(squirrel.Dollar)
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to execute statement '%s': %w", q.SQL(), err)
	}
	return nil
}

func (p *Adapter) QueryValue(ctx context.Context, q common.Query, dest any) error {
	if p.pool == nil {
		return common.ErrNotConnected
	}
	sql, args, err := q.Bind(squirrel.Dollar)
	if err != nil {
		return err
	}
	if err := p.pool.QueryRow(ctx, sql, args...).Scan(dest); err != nil {
		return fmt.Errorf("failed to query '%s': %w", q.SQL(), err)
	}
	return nil
}
