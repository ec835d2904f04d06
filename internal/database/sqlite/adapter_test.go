package sqlite

import (
	"context"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/types"
)

func TestCreateTableQuery(t *testing.T) {
	a := New()

	q, err := a.CreateTableQuery("users", []types.Column{
		{Name: "id", Kind: types.ColumnPrimaryKey},
		{Name: "name", Kind: types.ColumnString, Default: types.DefaultOf("x")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE \"users\" (\n\"id\" INTEGER PRIMARY KEY AUTOINCREMENT,\n\"name\" TEXT DEFAULT 'x'\n)", q.SQL())
}

func TestIndexDDL(t *testing.T) {
	a := New()

	compiled, err := a.IndexDDL(types.Index{Kind: types.IndexUnique, Table: "users", Columns: []string{"email"}})
	require.NoError(t, err)
	assert.Equal(t, `UNIQUE INDEX "email_idx" ON "users" ("email")`, compiled.DDL)

	compiled, err = a.IndexDDL(types.Index{Kind: types.IndexSimple, Table: "users", Columns: []string{"last_name DESC"}})
	require.NoError(t, err)
	assert.Equal(t, "last_name_idx", compiled.Name)
	assert.Equal(t, `INDEX "last_name_idx" ON "users" ("last_name" DESC)`, compiled.DDL)
}

func TestQuoteName(t *testing.T) {
	assert.Equal(t, `"we""ird"`, New().QuoteName(`we"ird`))
}

func TestExistsTableQuery(t *testing.T) {
	q := New().ExistsTableQuery("users")

	sql, args, err := q.Bind(squirrel.Question)
	require.NoError(t, err)
	assert.Equal(t, "SELECT count(*)>0 FROM sqlite_master WHERE type=? AND name=?", sql)
	assert.Equal(t, []any{"table", "users"}, args)
}

func TestTruncateTableQuery(t *testing.T) {
	assert.Equal(t, `DELETE FROM "users"`, New().TruncateTableQuery("users").SQL())
}

func TestColumnOperationsUnsupported(t *testing.T) {
	a := New()

	_, err := a.AddColumnQueries("users", []types.Column{{Name: "age", Kind: types.ColumnInt}})
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)

	_, err = a.DropColumnQueries("users", []string{"age"})
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)

	_, err = a.RenameColumnQuery("users", "age", "years")
	assert.ErrorIs(t, err, common.ErrUnsupportedOperation)
}

func TestExecuteAgainstFile(t *testing.T) {
	ctx := context.Background()
	a := New()
	require.NoError(t, a.Connect(ctx, "sqlite://"+t.TempDir()+"/test.db"))
	defer a.Close()
	require.NoError(t, a.Ping(ctx))

	create, err := a.CreateTableQuery("users", []types.Column{
		{Name: "id", Kind: types.ColumnPrimaryKey},
		{Name: "active", Kind: types.ColumnBoolean, Default: types.DefaultOf(true)},
	}, nil)
	require.NoError(t, err)
	require.NoError(t, a.Execute(ctx, create))

	var exists bool
	require.NoError(t, a.QueryValue(ctx, a.ExistsTableQuery("users"), &exists))
	assert.True(t, exists)

	require.NoError(t, a.QueryValue(ctx, a.ExistsTableQuery("missing"), &exists))
	assert.False(t, exists)

	var active bool
	require.NoError(t, a.Execute(ctx, common.NewQuery(`INSERT INTO "users" DEFAULT VALUES`, nil)))
	require.NoError(t, a.QueryValue(ctx, common.NewQuery(`SELECT "active" FROM "users" WHERE "id" = :id`, map[string]any{"id": 1}), &active))
	assert.True(t, active)
}

func TestExecuteWithoutConnection(t *testing.T) {
	err := New().Execute(context.Background(), common.NewQuery("SELECT 1", nil))
	assert.ErrorIs(t, err, common.ErrNotConnected)
}
