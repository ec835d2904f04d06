package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-of-it/running-dbal/internal/types"
)

const usersSchema = `tables:
  - name: users
    columns:
      - name: id
        kind: pk
      - name: name
        kind: string
        default: x
      - name: nickname
        kind: string
        default: null
      - name: active
        kind: boolean
        default: false
      - name: team_id
        kind: link
    indexes:
      - kind: unique
        columns: [email]
      - columns: ["last_name DESC"]
        name: by_last_name
        schema: app
`

func TestParse(t *testing.T) {
	tables, err := Parse([]byte(usersSchema))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	users := tables[0]
	assert.Equal(t, "users", users.Name)
	require.Len(t, users.Columns, 5)

	assert.Equal(t, types.ColumnPrimaryKey, users.Columns[0].Kind)
	assert.False(t, users.Columns[0].Default.IsSet())

	assert.Equal(t, types.DefaultOf("x"), users.Columns[1].Default)
	assert.True(t, users.Columns[2].Default.IsNull())
	assert.Equal(t, types.DefaultOf(false), users.Columns[3].Default)
	assert.Equal(t, types.ColumnLink, users.Columns[4].Kind)

	require.Len(t, users.Indexes, 2)
	assert.Equal(t, &types.Index{Kind: types.IndexUnique, Table: "users", Columns: []string{"email"}}, users.Indexes[0])
	assert.Equal(t, types.IndexSimple, users.Indexes[1].Kind)
	assert.Equal(t, "by_last_name", users.Indexes[1].Name)
	assert.Equal(t, "app", users.Indexes[1].Schema)
}

func TestParseRejectsBadInput(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":        "tables:\n  - name: t\n    colums: []\n",
		"unknown kind":       "tables:\n  - name: t\n    columns:\n      - name: a\n        kind: blob\n",
		"unknown index kind": "tables:\n  - name: t\n    indexes:\n      - kind: fulltext\n        columns: [a]\n",
		"not yaml":           "tables: [",
	} {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(usersSchema), 0644))

	tables, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, tables, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
