package daily

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC), "2026-03-05"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-01-01"},
		// 11pm EST is already the next day in UTC.
		{time.Date(2026, 3, 5, 23, 0, 0, 0, est), "2026-03-06"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DateKey(tt.in))
	}
}

func TestBoardSeed(t *testing.T) {
	day := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

	// Same date and salt, same seed, regardless of time of day.
	a := BoardSeed(day, "salt")
	b := BoardSeed(day.Add(8*time.Hour), "salt")
	assert.Equal(t, a, b)

	// Distinct across dates and salts.
	seen := map[int64]bool{a: true}
	for i := 1; i <= 30; i++ {
		s := BoardSeed(day.AddDate(0, 0, i), "salt")
		assert.False(t, seen[s], "seed collision on day %d", i)
		seen[s] = true
	}
	assert.NotEqual(t, a, BoardSeed(day, "other salt"))
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE daily_results (
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		board TEXT NOT NULL,
		words INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 0,
		longest INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(user_id, date)
	)`)
	require.NoError(t, err)
	return db
}

func TestStoreInsertAndAlreadyPlayed(t *testing.T) {
	st := NewStore(testDB(t))
	ctx := context.Background()

	played, err := st.AlreadyPlayed(ctx, "u1", "2026-03-05")
	require.NoError(t, err)
	assert.False(t, played)

	res := Result{UserID: "u1", Date: "2026-03-05", Board: "ADYERESTLPNAGIE1", Words: 12, Score: 17, Longest: 5}
	require.NoError(t, st.InsertResult(ctx, res))

	played, err = st.AlreadyPlayed(ctx, "u1", "2026-03-05")
	require.NoError(t, err)
	assert.True(t, played)

	// Second insert for the same user and date is a no-op.
	res.Score = 99
	require.NoError(t, st.InsertResult(ctx, res))
	rows, err := st.Leaderboard(ctx, "2026-03-05", 20)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 17, rows[0].Score)
}

func TestLeaderboardOrdering(t *testing.T) {
	st := NewStore(testDB(t))
	ctx := context.Background()

	for _, r := range []Result{
		{UserID: "u1", Date: "2026-03-05", Board: "B", Words: 3, Score: 10, Longest: 4},
		{UserID: "u2", Date: "2026-03-05", Board: "B", Words: 7, Score: 25, Longest: 6},
		{UserID: "u3", Date: "2026-03-05", Board: "B", Words: 5, Score: 25, Longest: 5},
		{UserID: "u4", Date: "2026-03-06", Board: "B", Words: 9, Score: 40, Longest: 7},
	} {
		require.NoError(t, st.InsertResult(ctx, r))
	}

	rows, err := st.Leaderboard(ctx, "2026-03-05", 20)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Score first, then word count breaks the tie.
	assert.Equal(t, "u2", rows[0].UserID)
	assert.Equal(t, "u3", rows[1].UserID)
	assert.Equal(t, "u1", rows[2].UserID)

	rows, err = st.Leaderboard(ctx, "2026-03-05", 2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
