package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-of-it/running-dbal/internal/database/common"
	"github.com/pr-of-it/running-dbal/internal/database/mysql"
	"github.com/pr-of-it/running-dbal/internal/database/sqlite"
	"github.com/pr-of-it/running-dbal/internal/types"
)

type recorder struct {
	executed []string
	failOn   string
	exists   bool
}

func (r *recorder) Execute(ctx context.Context, q common.Query) error {
	if r.failOn != "" && q.SQL() == r.failOn {
		return errors.New("execution failed")
	}
	r.executed = append(r.executed, q.SQL())
	return nil
}

func (r *recorder) QueryValue(ctx context.Context, q common.Query, dest any) error {
	*dest.(*bool) = r.exists
	return nil
}

func usersTable() types.Table {
	return types.Table{
		Name: "users",
		Columns: []types.Column{
			{Name: "id", Kind: types.ColumnPrimaryKey},
			{Name: "email", Kind: types.ColumnString},
			{Name: "created_at", Kind: types.ColumnDateTime},
		},
		Indexes: []*types.Index{
			{Kind: types.IndexUnique, Columns: []string{"email"}},
			{Kind: types.IndexSimple, Name: "recent", Columns: []string{"created_at DESC"}},
		},
	}
}

func TestCreateTablePersistsDerivedIndexNames(t *testing.T) {
	rec := &recorder{}
	s := NewSchema(sqlite.New(), rec)
	table := usersTable()

	require.NoError(t, s.CreateTable(context.Background(), table))

	require.Len(t, rec.executed, 3)
	assert.Contains(t, rec.executed[0], `CREATE TABLE "users"`)
	assert.Equal(t, `CREATE UNIQUE INDEX "email_idx" ON "users" ("email")`, rec.executed[1])
	assert.Equal(t, `CREATE INDEX "recent" ON "users" ("created_at" DESC)`, rec.executed[2])

	assert.Equal(t, "email_idx", table.Indexes[0].Name)
	assert.Equal(t, "recent", table.Indexes[1].Name)
}

func TestDerivedNameIsNotRecomputed(t *testing.T) {
	rec := &recorder{}
	s := NewSchema(sqlite.New(), rec)
	idx := &types.Index{Kind: types.IndexSimple, Columns: []string{"email"}}

	require.NoError(t, s.AddIndex(context.Background(), "users", idx))
	require.Equal(t, "email_idx", idx.Name)

	idx.Columns = []string{"email", "name"}
	require.NoError(t, s.AddIndex(context.Background(), "users", idx))

	assert.Equal(t, "email_idx", idx.Name)
	assert.Equal(t, `CREATE INDEX "email_idx" ON "users" ("email", "name")`, rec.executed[1])
}

func TestFailedIndexKeepsNameUnset(t *testing.T) {
	rec := &recorder{failOn: `CREATE INDEX "name_idx" ON "users" ("name")`}
	s := NewSchema(sqlite.New(), rec)
	first := &types.Index{Kind: types.IndexSimple, Columns: []string{"email"}}
	second := &types.Index{Kind: types.IndexSimple, Columns: []string{"name"}}

	err := s.AddIndex(context.Background(), "users", first, second)
	require.Error(t, err)
	assert.Equal(t, "email_idx", first.Name)
	assert.Empty(t, second.Name)
}

func TestCompileErrorsExecuteNothing(t *testing.T) {
	rec := &recorder{}
	s := NewSchema(sqlite.New(), rec)
	table := usersTable()
	table.Indexes = append(table.Indexes, &types.Index{Kind: types.IndexSimple, Columns: []string{" broken"}})

	err := s.CreateTable(context.Background(), table)
	assert.ErrorIs(t, err, common.ErrMalformedIndexSpec)
	assert.Empty(t, rec.executed)
	assert.Empty(t, table.Indexes[0].Name)
}

func TestUnsupportedOperationsExecuteNothing(t *testing.T) {
	rec := &recorder{}
	s := NewSchema(sqlite.New(), rec)
	ctx := context.Background()

	assert.ErrorIs(t, s.AddColumn(ctx, "users", types.Column{Name: "age", Kind: types.ColumnInt}), common.ErrUnsupportedOperation)
	assert.ErrorIs(t, s.DropColumn(ctx, "users", "age"), common.ErrUnsupportedOperation)
	assert.ErrorIs(t, s.RenameColumn(ctx, "users", "age", "years"), common.ErrUnsupportedOperation)
	assert.Empty(t, rec.executed)
}

func TestTableOperations(t *testing.T) {
	rec := &recorder{exists: true}
	s := NewSchema(mysql.New(), rec)
	ctx := context.Background()

	exists, err := s.TableExists(ctx, "users")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.RenameTable(ctx, "users", "people"))
	require.NoError(t, s.TruncateTable(ctx, "people"))
	require.NoError(t, s.AddColumn(ctx, "people", types.Column{Name: "age", Kind: types.ColumnInt}))
	require.NoError(t, s.DropColumn(ctx, "people", "age"))
	require.NoError(t, s.DropIndex(ctx, "people", &types.Index{Columns: []string{"email"}}))
	require.NoError(t, s.DropTable(ctx, "people"))

	assert.Equal(t, []string{
		"RENAME TABLE `users` TO `people`",
		"TRUNCATE TABLE `people`",
		"ALTER TABLE `people` ADD COLUMN `age` INT",
		"ALTER TABLE `people` DROP COLUMN `age`",
		"DROP INDEX `email_idx` ON `people`",
		"DROP TABLE `people`",
	}, rec.executed)
}

func TestNewAdapter(t *testing.T) {
	for provider, want := range map[string]types.Dialect{
		"sqlite":     types.DialectSQLite,
		"sqlite3":    types.DialectSQLite,
		"postgresql": types.DialectPostgres,
		"postgres":   types.DialectPostgres,
		"mysql":      types.DialectMySQL,
		"mssql":      types.DialectMSSQL,
		"sqlserver":  types.DialectMSSQL,
	} {
		adapter, err := NewAdapter(provider)
		require.NoError(t, err, provider)
		assert.Equal(t, want, adapter.Name(), provider)
	}

	_, err := NewAdapter("oracle")
	assert.Error(t, err)
}

func TestNilIndexesExecuteNothing(t *testing.T) {
	rec := &recorder{}
	s := NewSchema(sqlite.New(), rec)
	ctx := context.Background()
	ok := &types.Index{Kind: types.IndexSimple, Columns: []string{"email"}}

	assert.ErrorIs(t, s.AddIndex(ctx, "users", ok, nil), common.ErrInvalidSchema)
	assert.ErrorIs(t, s.DropIndex(ctx, "users", ok, nil), common.ErrInvalidSchema)

	table := usersTable()
	table.Indexes = append(table.Indexes, nil)
	assert.ErrorIs(t, s.CreateTable(ctx, table), common.ErrInvalidSchema)

	assert.Empty(t, rec.executed)
	assert.Empty(t, ok.Name)
}
