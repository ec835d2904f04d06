package postgres

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

func TestColumnDDL(t *testing.T) {
	a := New()

	tests := []struct {
		col  types.Column
		want string
	}{
		{types.Column{Kind: types.ColumnPrimaryKey}, "SERIAL PRIMARY KEY"},
		{types.Column{Kind: types.ColumnBoolean, Default: types.DefaultOf(true)}, "BOOLEAN DEFAULT TRUE"},
		{types.Column{Kind: types.ColumnBoolean, Default: types.DefaultOf(0)}, "BOOLEAN DEFAULT FALSE"},
		{types.Column{Kind: types.ColumnString, Default: types.DefaultOf("it's")}, "VARCHAR(255) DEFAULT 'it''s'"},
		{types.Column{Kind: types.ColumnString, Default: types.DefaultOf(`a\b`)}, `VARCHAR(255) DEFAULT E'a\\b'`},
		{types.Column{Kind: types.ColumnFloat, Default: types.DefaultOf(1.5)}, "DOUBLE PRECISION DEFAULT 1.5"},
		{types.Column{Kind: types.ColumnLink, Default: types.DefaultOf(3)}, "INTEGER DEFAULT NULL"},
		{types.Column{Kind: types.ColumnDateTime}, "TIMESTAMP"},
	}

	for _, tt := range tests {
		tt.col.Name = "c"
		got, err := a.ColumnDDL(tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestIndexDDL(t *testing.T) {
	compiled, err := New().IndexDDL(types.Index{Kind: types.IndexUnique, Table: "users", Columns: []string{"email"}})
	require.NoError(t, err)
	assert.Equal(t, `UNIQUE INDEX "email_idx" ON "users" ("email")`, compiled.DDL)
}

func TestStatements(t *testing.T) {
	a := New()

	assert.Equal(t, `TRUNCATE TABLE "users"`, a.TruncateTableQuery("users").SQL())
	assert.Equal(t, `ALTER TABLE "users" RENAME TO "people"`, a.RenameTableQuery("users", "people").SQL())

	q, err := a.DropIndexQuery("users", types.Index{Name: "email_idx", Schema: "public"})
	require.NoError(t, err)
	assert.Equal(t, `DROP INDEX "public"."email_idx"`, q.SQL())
}

func TestExistsTableQuery(t *testing.T) {
	sql, args, err := New().ExistsTableQuery("users").Bind(squirrel.Dollar)
	require.NoError(t, err)
	assert.Contains(t, sql, "information_schema.tables")
	assert.Contains(t, sql, "table_type=$1 AND table_name=$2")
	assert.Equal(t, []any{"BASE TABLE", "users"}, args)
}

func TestExecuteWithoutConnection(t *testing.T) {
	err := New().Execute(context.Background(), common.NewQuery("SELECT 1", nil))
	assert.ErrorIs(t, err, common.ErrNotConnected)
}
