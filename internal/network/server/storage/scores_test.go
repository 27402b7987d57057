package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScoreStore(t *testing.T) *ScoreStore {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewScoreStore(client)
}

func TestScoreStore_IncrAndGet(t *testing.T) {
	store := newTestScoreStore(t)
	ctx := context.Background()

	// Unknown player starts from zero
	score, err := store.GetScore(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	total, err := store.IncrScore(ctx, "p1", "Alice", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, total)

	total, err = store.IncrScore(ctx, "p1", "Alice", -30)
	require.NoError(t, err)
	assert.Equal(t, 70, total)

	score, err = store.GetScore(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 70, score)
}

func TestScoreStore_Leaderboard(t *testing.T) {
	store := newTestScoreStore(t)
	ctx := context.Background()

	_, err := store.IncrScore(ctx, "p1", "Alice", 300)
	require.NoError(t, err)
	_, err = store.IncrScore(ctx, "p2", "Bob", 500)
	require.NoError(t, err)
	_, err = store.IncrScore(ctx, "p3", "Carol", -100)
	require.NoError(t, err)

	entries, err := store.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "p2", entries[0].PlayerID)
	assert.Equal(t, "Bob", entries[0].PlayerName)
	assert.Equal(t, 500, entries[0].Score)

	assert.Equal(t, "p1", entries[1].PlayerID)
	assert.Equal(t, "p3", entries[2].PlayerID)
}

func TestScoreStore_LeaderboardLimit(t *testing.T) {
	store := newTestScoreStore(t)
	ctx := context.Background()

	_, err := store.IncrScore(ctx, "p1", "Alice", 10)
	require.NoError(t, err)
	_, err = store.IncrScore(ctx, "p2", "Bob", 20)
	require.NoError(t, err)

	entries, err := store.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].PlayerID)

	// limit 为 0 时退回默认条数
	entries, err = store.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestScoreStore_EmptyLeaderboard(t *testing.T) {
	store := newTestScoreStore(t)

	entries, err := store.GetLeaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
