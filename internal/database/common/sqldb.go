package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// ExecSQL binds q for the driver's placeholder format and executes it.
func ExecSQL(ctx context.Context, db *sql.DB, format squirrel.PlaceholderFormat, q Query) error {
	if db == nil {
		return ErrNotConnected
	}
	stmt, args, err := q.Bind(format)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to execute statement '%s': %w", q.SQL(), err)
	}
	return nil
}

// QueryValueSQL runs q and scans the single value of its first row into dest.
func QueryValueSQL(ctx context.Context, db *sql.DB, format squirrel.PlaceholderFormat, q Query, dest any) error {
	if db == nil {
		return ErrNotConnected
	}
	stmt, args, err := q.Bind(format)
	if err != nil {
		return err
	}
	if err := db.QueryRowContext(ctx, stmt, args...).Scan(dest); err != nil {
		return fmt.Errorf("failed to query '%s': %w", q.SQL(), err)
	}
	return nil
}
