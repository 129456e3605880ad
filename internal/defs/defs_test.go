package defs

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joelburton/tboggle/assets"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE defs (
		word TEXT PRIMARY KEY,
		definition TEXT NOT NULL
	)`)
	require.NoError(t, err)
	return db
}

func TestLookup(t *testing.T) {
	db := testDB(t)
	_, err := db.Exec(`INSERT INTO defs(word, definition) VALUES ('PEARL', 'a hard lustrous mass formed within an oyster')`)
	require.NoError(t, err)

	st := NewStore(db)
	ctx := context.Background()

	// Case and padding are forgiven on lookup.
	for _, in := range []string{"PEARL", "pearl", "  Pearl "} {
		def, err := st.Lookup(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "a hard lustrous mass formed within an oyster", def, "lookup %q", in)
	}

	// Missing words come back empty, not as an error.
	def, err := st.Lookup(ctx, "xylophone")
	require.NoError(t, err)
	assert.Empty(t, def)
}

func TestSeed(t *testing.T) {
	st := NewStore(testDB(t))
	ctx := context.Background()

	glossary, err := assets.Definitions()
	require.NoError(t, err)
	require.NotEmpty(t, glossary)

	require.NoError(t, st.Seed(ctx, glossary))
	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(glossary), n)

	def, err := st.Lookup(ctx, "rest")
	require.NoError(t, err)
	assert.Equal(t, "to cease work or movement", def)

	// Seeding again must not clobber existing rows.
	require.NoError(t, st.Seed(ctx, map[string]string{"rest": "changed"}))
	def, err = st.Lookup(ctx, "rest")
	require.NoError(t, err)
	assert.Equal(t, "to cease work or movement", def)
}
