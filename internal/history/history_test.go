package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndPopular(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, "python tutorial"))
	}
	require.NoError(t, store.Record(ctx, "python basics"))
	require.NoError(t, store.Record(ctx, "golang"))

	popular, err := store.Popular(ctx, "python", 10)
	require.NoError(t, err)

	require.Len(t, popular, 2)
	assert.Equal(t, "python tutorial", popular[0].Term)
	assert.Equal(t, 3, popular[0].Count)
	assert.Equal(t, "python basics", popular[1].Term)
	assert.Equal(t, 1, popular[1].Count)
}

func TestPopularRespectsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, query := range []string{"car", "cart", "card"} {
		require.NoError(t, store.Record(ctx, query))
	}

	popular, err := store.Popular(ctx, "car", 2)
	require.NoError(t, err)
	assert.Len(t, popular, 2)
}

func TestPopularNoMatches(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "python"))

	popular, err := store.Popular(ctx, "java", 5)
	require.NoError(t, err)
	assert.Empty(t, popular)
}

func TestRecordEmptyQueryIgnored(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, ""))

	popular, err := store.Popular(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, popular)
}

// TestPopularLikeEscaping checks that prefixes containing LIKE
// metacharacters match literally instead of as wildcards.
func TestPopularLikeEscaping(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, "100% cotton"))
	require.NoError(t, store.Record(ctx, "100x cotton"))

	popular, err := store.Popular(ctx, "100%", 10)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "100% cotton", popular[0].Term)
}

func TestPopularZeroLimit(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Record(context.Background(), "python"))

	popular, err := store.Popular(context.Background(), "py", 0)
	require.NoError(t, err)
	assert.Empty(t, popular)
}
